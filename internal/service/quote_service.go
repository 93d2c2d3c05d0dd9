package service

import (
	"context"

	"github.com/neuronova/backend/internal/model"
)

// QuoteService defines the business logic for quote requests.
type QuoteService interface {
	// Submit stores a new quote request and schedules the admin
	// notification. The quote.ID and CreatedAt are populated by the
	// implementation.
	Submit(ctx context.Context, quote *model.QuoteRequest) error

	// Get returns the quote with the given id, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.QuoteRequest, error)

	// ListByClientEmail returns quotes submitted with the given client
	// email, newest first, capped. No matches is an empty result.
	ListByClientEmail(ctx context.Context, email string) ([]*model.QuoteRequest, error)

	// List returns stored quote requests, newest first, capped.
	List(ctx context.Context) ([]*model.QuoteRequest, error)
}

// QuoteNotifier sends the admin notification for a persisted quote request.
type QuoteNotifier interface {
	QuoteSubmitted(ctx context.Context, quote *model.QuoteRequest)
}
