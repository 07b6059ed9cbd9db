package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

const tokenCacheTTL = 15 * time.Minute

// TokenCache caches token-to-user resolution so the auth gate does not hit
// MongoDB on every authenticated request. Tokens are immutable, so a cached
// entry can never be wrong; the TTL only bounds memory.
//
// Keys hold a SHA-256 of the token rather than the token itself, keeping the
// raw credential out of Redis.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

type cachedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Lookup returns the cached user for token, or (nil, nil) on a miss.
func (c *TokenCache) Lookup(ctx context.Context, token string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("token cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("token cache decode: %w", err)
	}

	return &domain.User{
		ID:          cu.ID,
		Email:       cu.Email,
		AccessToken: token,
		CreatedAt:   cu.CreatedAt,
	}, nil
}

// Store records the resolved user for token (expires after tokenCacheTTL).
// The password hash is never written to the cache.
func (c *TokenCache) Store(ctx context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("token cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(token), raw, tokenCacheTTL).Err()
}

func (c *TokenCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "authtoken:" + hex.EncodeToString(sum[:])
}
