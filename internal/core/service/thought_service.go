package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
)

// defaultListLimit caps list responses. There is no pagination; the newest
// documents win.
const defaultListLimit = 20

// ThoughtService implements the thought use cases.
type ThoughtService struct {
	repo   ports.ThoughtRepository
	logger zerolog.Logger
}

func NewThoughtService(repo ports.ThoughtRepository, logger zerolog.Logger) *ThoughtService {
	return &ThoughtService{repo: repo, logger: logger}
}

// Create validates and stores a new thought. The message is trimmed before
// the length check so padding cannot smuggle an under- or over-sized text.
func (s *ThoughtService) Create(ctx context.Context, message string) (*domain.Thought, error) {
	trimmed, err := domain.ValidateMessage(message)
	if err != nil {
		return nil, err
	}

	thought := &domain.Thought{
		Message:   trimmed,
		Hearts:    0,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, thought)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create thought")
		return nil, err
	}

	s.logger.Info().Str("thought_id", created.ID).Msg("thought created")
	return created, nil
}

func (s *ThoughtService) Get(ctx context.Context, id string) (*domain.Thought, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns the newest thoughts, optionally restricted to liked ones
// (hearts > 0) and to a case-insensitive substring of the message text.
func (s *ThoughtService) List(ctx context.Context, input ports.ListThoughtsInput) ([]*domain.Thought, error) {
	return s.repo.List(ctx, ports.ListThoughtsFilter{
		LikedOnly: input.Liked,
		Search:    input.Search,
		Limit:     defaultListLimit,
	})
}

// Like adds one heart. The increment happens atomically at the store so
// concurrent likes on the same thought all count.
func (s *ThoughtService) Like(ctx context.Context, id string) (*domain.Thought, error) {
	updated, err := s.repo.IncrementHearts(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("thought_id", updated.ID).Int("hearts", updated.Hearts).Msg("thought liked")
	return updated, nil
}
