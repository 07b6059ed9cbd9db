package ports

import (
	"context"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// There are no update or delete operations: accounts are immutable once
// created.
type UserRepository interface {
	// FindByEmail looks up a user by normalized (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByToken looks up a user by exact access token match.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// normalized email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
