package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/repository"
)

// quoteServiceImpl is the production implementation of QuoteService.
type quoteServiceImpl struct {
	repo     repository.QuoteRepository
	notifier QuoteNotifier
}

// NewQuoteService creates a QuoteService backed by the given repository and
// notifier.
func NewQuoteService(repo repository.QuoteRepository, notifier QuoteNotifier) QuoteService {
	return &quoteServiceImpl{repo: repo, notifier: notifier}
}

// Submit assigns the quote an id and a UTC timestamp, persists it, then
// schedules the admin notification detached from the request. Persistence
// completes (success or failure) strictly before the notification is
// scheduled.
func (s *quoteServiceImpl) Submit(ctx context.Context, quote *model.QuoteRequest) error {
	quote.ID = uuid.NewString()
	quote.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, quote); err != nil {
		return err
	}

	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(notifyCtx, notifyTimeout)
		defer cancel()
		s.notifier.QuoteSubmitted(ctx, quote)
	}()
	return nil
}

// Get returns the quote with the given id.
func (s *quoteServiceImpl) Get(ctx context.Context, id string) (*model.QuoteRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByClientEmail returns quotes for the given client email.
func (s *quoteServiceImpl) ListByClientEmail(ctx context.Context, email string) ([]*model.QuoteRequest, error) {
	return s.repo.FindByClientEmail(ctx, email, listLimit)
}

// List returns stored quote requests, newest first.
func (s *quoteServiceImpl) List(ctx context.Context) ([]*model.QuoteRequest, error) {
	return s.repo.List(ctx, listLimit)
}
