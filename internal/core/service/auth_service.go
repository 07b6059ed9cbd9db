package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
)

// AuthService implements signup, login and bearer-token resolution.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	cache  ports.TokenCache // optional; nil disables caching
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, cache ports.TokenCache, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, logger: logger}
}

// Signup creates a new account and returns its credentials, including the
// freshly issued access token. A duplicate email fails with ErrUserExists
// and leaves no trace in the store.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*ports.Credentials, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		AccessToken:  token,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")

	return &ports.Credentials{
		ID:          created.ID,
		Email:       created.Email,
		AccessToken: created.AccessToken,
	}, nil
}

// Login verifies email and password and returns the account's permanent
// access token. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Credentials, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.Credentials{
		ID:          user.ID,
		Email:       user.Email,
		AccessToken: user.AccessToken,
	}, nil
}

// Authenticate resolves a raw bearer token to its owning user, consulting
// the cache before the store. Cache failures degrade to a store lookup.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.Lookup(ctx, token)
		if err != nil {
			s.logger.Warn().Err(err).Msg("token cache lookup failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, token, user); err != nil {
			s.logger.Warn().Err(err).Msg("token cache store failed")
		}
	}

	return user, nil
}

// normalizeEmail folds the address for case-insensitive uniqueness.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
