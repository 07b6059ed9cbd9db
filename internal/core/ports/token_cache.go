package ports

import (
	"context"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// TokenCache is a read-through cache in front of the credential store for
// token resolution. Tokens are immutable and never revoked, so entries can
// never go stale; the TTL only bounds memory.
//
// A miss is (nil, nil), not an error. Cache failures are soft: callers fall
// back to the store.
type TokenCache interface {
	Lookup(ctx context.Context, token string) (*domain.User, error)
	Store(ctx context.Context, token string, user *domain.User) error
}
