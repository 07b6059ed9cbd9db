package ports

import (
	"context"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// Credentials is the view of an account returned by signup and login. It is
// the only place the access token ever appears in a response body.
type Credentials struct {
	ID          string
	Email       string
	AccessToken string
}

// AuthService defines the signup/login/token-resolution use cases.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*Credentials, error)
	Login(ctx context.Context, email, password string) (*Credentials, error)
	// Authenticate resolves a raw bearer token to the owning user.
	// Returns domain.ErrUserNotFound when no account holds the token.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
