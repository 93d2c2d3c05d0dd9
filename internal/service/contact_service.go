package service

import (
	"context"

	"github.com/neuronova/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message and schedules the admin
	// notification. The msg.ID and CreatedAt are populated by the
	// implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns stored contact messages, newest first, capped.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// ContactNotifier sends the admin notification for a persisted contact
// message. Implementations must not return errors to the caller; delivery
// is best-effort.
type ContactNotifier interface {
	ContactSubmitted(ctx context.Context, msg *model.ContactMessage)
}
