package repository

import (
	"context"

	"flightquery-service/internal/domain/entity"
)

// CompletionRepository defines the interface for the LLM completion API.
type CompletionRepository interface {
	// Complete sends the role-tagged messages and returns the generated
	// text of the first choice. An empty completion is returned as-is;
	// callers decide whether that is an error.
	Complete(ctx context.Context, messages []entity.ChatMessage, opts entity.CompletionOptions) (string, error)
}
