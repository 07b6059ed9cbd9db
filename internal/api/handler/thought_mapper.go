package handler

import "github.com/happythoughts/thoughts-api/internal/core/domain"

func toThoughtResponse(t *domain.Thought) thoughtResponse {
	return thoughtResponse{
		ID:        t.ID,
		Message:   t.Message,
		Hearts:    t.Hearts,
		CreatedAt: t.CreatedAt.UTC(),
	}
}

// toThoughtResponses always returns a non-nil slice so an empty result
// serializes as [] rather than null.
func toThoughtResponses(thoughts []*domain.Thought) []thoughtResponse {
	out := make([]thoughtResponse, len(thoughts))
	for i, t := range thoughts {
		out[i] = toThoughtResponse(t)
	}
	return out
}
