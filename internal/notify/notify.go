// Package notify builds and dispatches the admin notification emails sent
// after a contact message or quote request has been persisted. Dispatch is
// best-effort: failures are logged and never propagated.
package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/pkg/mailer"
)

// Notifier sends admin notifications through a Mailer.
type Notifier struct {
	mailer     mailer.Mailer
	adminEmail string
}

// New creates a Notifier addressing all notifications to adminEmail.
func New(m mailer.Mailer, adminEmail string) *Notifier {
	return &Notifier{mailer: m, adminEmail: adminEmail}
}

// ContactSubmitted sends the new-contact-message notification. Errors are
// logged, not returned: the triggering request has already been answered.
func (n *Notifier) ContactSubmitted(ctx context.Context, msg *model.ContactMessage) {
	subject := fmt.Sprintf("Nouveau message de contact - %s", msg.Name)
	body := contactBody(msg)
	if err := n.mailer.Send(ctx, n.adminEmail, subject, body); err != nil {
		slog.Error("contact notification failed", "contact_id", msg.ID, "error", err)
	}
}

// QuoteSubmitted sends the new-quote-request notification. Errors are
// logged, not returned.
func (n *Notifier) QuoteSubmitted(ctx context.Context, quote *model.QuoteRequest) {
	subject := fmt.Sprintf("Nouvelle demande de devis - %s", quote.ClientName)
	body := quoteBody(quote)
	if err := n.mailer.Send(ctx, n.adminEmail, subject, body); err != nil {
		slog.Error("quote notification failed", "quote_id", quote.ID, "error", err)
	}
}

func contactBody(msg *model.ContactMessage) string {
	phone := msg.Phone
	if phone == "" {
		phone = "Non fourni"
	}
	return fmt.Sprintf(`<html>
	<body style="font-family: Arial, sans-serif; padding: 20px;">
		<h2 style="color: #38BDF8;">Nouveau Message de Contact</h2>
		<p><strong>Nom:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Téléphone:</strong> %s</p>
		<div style="background: #f5f5f5; padding: 15px; border-radius: 8px; margin-top: 15px;">
			<strong>Message:</strong>
			<p>%s</p>
		</div>
		<p style="color: #666; font-size: 12px; margin-top: 20px;">Reçu le %s</p>
	</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(phone),
		html.EscapeString(msg.Message),
		formatReceived(msg.CreatedAt),
	)
}

func quoteBody(quote *model.QuoteRequest) string {
	company := quote.Company
	if company == "" {
		company = "Non fournie"
	}
	email := quote.ClientEmail
	if email == "" {
		email = "Non fourni"
	}
	notes := quote.Notes
	if notes == "" {
		notes = "Aucune"
	}
	return fmt.Sprintf(`<html>
	<body style="font-family: Arial, sans-serif; padding: 20px;">
		<h2 style="color: #F59E0B;">Nouvelle Demande de Devis</h2>
		<p><strong>Client:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Entreprise:</strong> %s</p>
		<p><strong>Services:</strong> %s</p>
		<p><strong>Total:</strong> %.2f USD / %.0f FC</p>
		<div style="background: #f5f5f5; padding: 15px; border-radius: 8px; margin-top: 15px;">
			<strong>Notes:</strong>
			<p>%s</p>
		</div>
		<p style="color: #666; font-size: 12px; margin-top: 20px;">Reçu le %s</p>
	</body>
</html>`,
		html.EscapeString(quote.ClientName),
		html.EscapeString(email),
		html.EscapeString(company),
		html.EscapeString(strings.Join(quote.Services, ", ")),
		quote.TotalUSD,
		quote.TotalFC,
		html.EscapeString(notes),
		formatReceived(quote.CreatedAt),
	)
}

func formatReceived(t time.Time) string {
	return t.Format("02/01/2006 à 15:04")
}
