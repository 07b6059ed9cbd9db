package ports

import (
	"context"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// ListThoughtsFilter carries the query parameters for listing thoughts.
type ListThoughtsFilter struct {
	LikedOnly bool   // hearts > 0
	Search    string // case-insensitive substring match on message
	Limit     int    // max documents returned, newest first
}

// ThoughtRepository defines persistence operations for thoughts.
type ThoughtRepository interface {
	Insert(ctx context.Context, t *domain.Thought) (*domain.Thought, error)
	// FindByID retrieves a thought by its hex id. Returns
	// domain.ErrInvalidThoughtID for malformed ids and
	// domain.ErrThoughtNotFound for well-formed ids with no document.
	FindByID(ctx context.Context, id string) (*domain.Thought, error)
	// List returns thoughts matching filter, sorted newest first.
	List(ctx context.Context, filter ListThoughtsFilter) ([]*domain.Thought, error)
	// IncrementHearts atomically adds one heart and returns the updated
	// document, so concurrent likes on the same thought never lose updates.
	IncrementHearts(ctx context.Context, id string) (*domain.Thought, error)
}
