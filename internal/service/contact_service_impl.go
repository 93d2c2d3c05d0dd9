package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/repository"
)

// listLimit caps admin listings; there is no pagination cursor.
const listLimit = 100

// notifyTimeout bounds a detached notification send.
const notifyTimeout = 30 * time.Second

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit assigns the message an id and a UTC timestamp, persists it, then
// schedules the admin notification. The notification runs detached from the
// request: a client disconnect does not cancel it and its outcome never
// changes the already-determined response. A storage failure aborts before
// any notification is scheduled.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, msg); err != nil {
		return err
	}

	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(notifyCtx, notifyTimeout)
		defer cancel()
		s.notifier.ContactSubmitted(ctx, msg)
	}()
	return nil
}

// List returns stored contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, listLimit)
}
