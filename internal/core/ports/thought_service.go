package ports

import (
	"context"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

// ListThoughtsInput carries the query parameters accepted by the list
// endpoint. The page size is fixed by the service; there is no pagination.
type ListThoughtsInput struct {
	Liked  bool
	Search string
}

// ThoughtService defines use-case operations for thoughts.
type ThoughtService interface {
	Create(ctx context.Context, message string) (*domain.Thought, error)
	Get(ctx context.Context, id string) (*domain.Thought, error)
	List(ctx context.Context, input ListThoughtsInput) ([]*domain.Thought, error)
	Like(ctx context.Context, id string) (*domain.Thought, error)
}
