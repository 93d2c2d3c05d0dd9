package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/neuronova/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock Mailer
// ---------------------------------------------------------------------------

type mockMailer struct {
	sendFunc func(ctx context.Context, to, subject, htmlBody string) error

	to      string
	subject string
	body    string
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	if m.sendFunc != nil {
		return m.sendFunc(ctx, to, subject, htmlBody)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestNotifier_ContactSubmitted(t *testing.T) {
	m := &mockMailer{}
	n := New(m, "admin@neuronova.com")

	msg := &model.ContactMessage{
		ID:        "c-1",
		Name:      "Alice",
		Email:     "alice@x.com",
		Message:   "Bonjour",
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	n.ContactSubmitted(context.Background(), msg)

	if m.to != "admin@neuronova.com" {
		t.Errorf("expected admin recipient, got %q", m.to)
	}
	if !strings.Contains(m.subject, "Alice") {
		t.Errorf("expected subject to name the sender, got %q", m.subject)
	}
	if !strings.Contains(m.body, "Bonjour") {
		t.Error("expected body to contain the message")
	}
	if !strings.Contains(m.body, "14/03/2025") {
		t.Errorf("expected body to contain the received date, got %q", m.body)
	}
	// Phone was not provided
	if !strings.Contains(m.body, "Non fourni") {
		t.Error("expected the missing-phone placeholder")
	}
}

// TestNotifier_ContactSubmitted_EscapesHTML verifies user input cannot
// inject markup into the notification email.
func TestNotifier_ContactSubmitted_EscapesHTML(t *testing.T) {
	m := &mockMailer{}
	n := New(m, "admin@neuronova.com")

	msg := &model.ContactMessage{
		Name:    "Eve",
		Email:   "eve@x.com",
		Message: `<script>alert("x")</script>`,
	}
	n.ContactSubmitted(context.Background(), msg)

	if strings.Contains(m.body, "<script>") {
		t.Error("expected message HTML to be escaped")
	}
	if !strings.Contains(m.body, "&lt;script&gt;") {
		t.Error("expected escaped script tag in body")
	}
}

func TestNotifier_QuoteSubmitted(t *testing.T) {
	m := &mockMailer{}
	n := New(m, "admin@neuronova.com")

	quote := &model.QuoteRequest{
		ID:         "q-1",
		ClientName: "Bob",
		Services:   []string{"logo", "site-vitrine"},
		TotalUSD:   450,
		TotalFC:    990000,
		CreatedAt:  time.Now().UTC(),
	}
	n.QuoteSubmitted(context.Background(), quote)

	if m.to != "admin@neuronova.com" {
		t.Errorf("expected admin recipient, got %q", m.to)
	}
	if !strings.Contains(m.subject, "Bob") {
		t.Errorf("expected subject to name the client, got %q", m.subject)
	}
	if !strings.Contains(m.body, "logo, site-vitrine") {
		t.Error("expected body to list the requested services")
	}
	if !strings.Contains(m.body, "450.00 USD") || !strings.Contains(m.body, "990000 FC") {
		t.Errorf("expected body to show both totals, got %q", m.body)
	}
}

// TestNotifier_SendFailureIsSwallowed verifies delivery errors never
// propagate: notification is advisory.
func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	m := &mockMailer{
		sendFunc: func(ctx context.Context, to, subject, htmlBody string) error {
			return errors.New("provider unreachable")
		},
	}
	n := New(m, "admin@neuronova.com")

	// Neither call returns an error or panics.
	n.ContactSubmitted(context.Background(), &model.ContactMessage{Name: "A", Email: "a@x.com", Message: "m"})
	n.QuoteSubmitted(context.Background(), &model.QuoteRequest{ClientName: "B", Services: []string{"logo"}})
}
