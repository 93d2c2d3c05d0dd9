// Package mailer provides a thin SendGrid client for transactional email.
// Sending is best-effort: when no API key is configured the mailer is a
// logged no-op so the rest of the system keeps working without credentials.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SendGrid is the SendGrid-backed Mailer implementation.
type SendGrid struct {
	client     *sendgrid.Client
	sender     string
	senderName string
}

// NewSendGrid creates a SendGrid mailer sending from the given address.
// An empty apiKey yields a disabled mailer whose Send is a no-op.
func NewSendGrid(apiKey, sender string) *SendGrid {
	m := &SendGrid{sender: sender, senderName: "Neuronova"}
	if apiKey == "" {
		return m
	}
	m.client = sendgrid.NewSendClient(apiKey)
	return m
}

var _ Mailer = (*SendGrid)(nil)

// Enabled reports whether a SendGrid API key was configured.
func (m *SendGrid) Enabled() bool { return m.client != nil }

// Send delivers one HTML email via SendGrid. SendGrid acknowledges accepted
// mail with 202; any other status is an error.
func (m *SendGrid) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.client == nil {
		slog.Warn("sendgrid api key not configured, skipping email", "to", to, "subject", subject)
		return nil
	}

	msg := mail.NewSingleEmail(
		mail.NewEmail(m.senderName, m.sender),
		subject,
		mail.NewEmail("", to),
		"",
		htmlBody,
	)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode != 202 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}

	slog.Info("email sent", "to", to, "status", resp.StatusCode)
	return nil
}
