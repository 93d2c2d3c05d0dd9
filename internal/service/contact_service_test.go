package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neuronova/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	insertFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context, limit int64) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, limit int64) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

type mockContactNotifier struct {
	notified chan *model.ContactMessage
}

func (m *mockContactNotifier) ContactSubmitted(ctx context.Context, msg *model.ContactMessage) {
	if m.notified != nil {
		m.notified <- msg
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_AssignsIDAndTimestamp(t *testing.T) {
	before := time.Now().UTC()
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		insertFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	svc := NewContactService(repo, &mockContactNotifier{})

	msg := &model.ContactMessage{Name: "Alice", Email: "alice@x.com", Message: "Hello"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Insert to be called")
	}
	if saved.ID == "" {
		t.Error("expected a generated id")
	}
	if saved.CreatedAt.Before(before) || saved.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("unexpected CreatedAt: %v", saved.CreatedAt)
	}
	if saved.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", saved.CreatedAt.Location())
	}
}

// TestContactService_Submit_UniqueIDs verifies identifiers are assigned
// exactly once and never repeat across submissions.
func TestContactService_Submit_UniqueIDs(t *testing.T) {
	repo := &mockContactRepository{}
	svc := NewContactService(repo, &mockContactNotifier{})

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		msg := &model.ContactMessage{Name: "A", Email: "a@x.com", Message: "m"}
		if err := svc.Submit(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[msg.ID] {
			t.Fatalf("duplicate id %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

// TestContactService_Submit_NotifiesAfterPersist verifies the notification
// is scheduled only after a successful insert, carrying the stored record.
func TestContactService_Submit_NotifiesAfterPersist(t *testing.T) {
	inserted := false
	repo := &mockContactRepository{
		insertFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			inserted = true
			return nil
		},
	}
	notifier := &mockContactNotifier{notified: make(chan *model.ContactMessage, 1)}
	svc := NewContactService(repo, notifier)

	msg := &model.ContactMessage{Name: "Alice", Email: "alice@x.com", Message: "Hello"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case got := <-notifier.notified:
		if !inserted {
			t.Error("notification dispatched before persistence completed")
		}
		if got.ID != msg.ID {
			t.Errorf("notification carries id %q, want %q", got.ID, msg.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification")
	}
}

// TestContactService_Submit_StorageErrorSkipsNotification verifies a failed
// insert surfaces the error and schedules no notification.
func TestContactService_Submit_StorageErrorSkipsNotification(t *testing.T) {
	repo := &mockContactRepository{
		insertFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("connection lost")
		},
	}
	notifier := &mockContactNotifier{notified: make(chan *model.ContactMessage, 1)}
	svc := NewContactService(repo, notifier)

	msg := &model.ContactMessage{Name: "Alice", Email: "alice@x.com", Message: "Hello"}
	if err := svc.Submit(context.Background(), msg); err == nil {
		t.Fatal("expected an error")
	}

	select {
	case <-notifier.notified:
		t.Error("expected no notification after storage failure")
	case <-time.After(100 * time.Millisecond):
	}
}

// TestContactService_Submit_NotificationOutlivesRequest verifies dispatch is
// detached from the request's cancellation scope.
func TestContactService_Submit_NotificationOutlivesRequest(t *testing.T) {
	repo := &mockContactRepository{}
	ctxErrs := make(chan error, 1)
	notifier := &contactNotifierFunc{fn: func(ctx context.Context, msg *model.ContactMessage) {
		ctxErrs <- ctx.Err()
	}}
	svc := NewContactService(repo, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	msg := &model.ContactMessage{Name: "Alice", Email: "alice@x.com", Message: "Hello"}
	if err := svc.Submit(ctx, msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel() // simulate client disconnect right after the response

	select {
	case err := <-ctxErrs:
		if err != nil {
			t.Errorf("notification context cancelled with the request: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification")
	}
}

type contactNotifierFunc struct {
	fn func(ctx context.Context, msg *model.ContactMessage)
}

func (n *contactNotifierFunc) ContactSubmitted(ctx context.Context, msg *model.ContactMessage) {
	n.fn(ctx, msg)
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestContactService_List_CapsResults(t *testing.T) {
	var gotLimit int64
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, limit int64) ([]*model.ContactMessage, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewContactService(repo, &mockContactNotifier{})

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != listLimit {
		t.Errorf("expected limit=%d, got %d", listLimit, gotLimit)
	}
}
