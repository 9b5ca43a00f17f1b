package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jakecozza/djservices/internal/intake"
	"github.com/jakecozza/djservices/pkg/logging"
)

// QuoteMailer formats and sends the two quote-request emails: the owner
// notification and the customer confirmation.
type QuoteMailer struct {
	email      EmailSender
	ownerEmail string
	logger     *logging.Logger
}

// NewQuoteMailer creates a quote mailer. Returns nil when no sender is
// configured so callers can treat email as an absent capability.
func NewQuoteMailer(email EmailSender, ownerEmail string, logger *logging.Logger) *QuoteMailer {
	if email == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &QuoteMailer{
		email:      email,
		ownerEmail: ownerEmail,
		logger:     logger,
	}
}

// NotifyOwner sends the new-quote notification to the business owner.
func (m *QuoteMailer) NotifyOwner(ctx context.Context, q *intake.QuoteRequest) error {
	date := formatEventDate(q.EventDate)

	body := fmt.Sprintf(`🎵 NEW QUOTE REQUEST - Jake Cozza DJ Services

Client Details:
👤 Name: %s
📧 Email: %s
📞 Phone: %s
📅 Event Date: %s
🎉 Event Type: %s
%s
Contact the client:
- Email: %s
- Phone: %s
`, q.Name, q.Email, q.Phone, date, q.EventType, formatMessageText(q.Message), q.Email, q.Phone)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #6366f1;">🎵 New Quote Request</h2>
<p>A potential client is interested in your DJ services!</p>
<table style="border-collapse: collapse; margin: 20px 0;">
  <tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Name:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;">%s</td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Email:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><a href="mailto:%s">%s</a></td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Phone:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><a href="tel:%s">%s</a></td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Event Date:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;">%s</td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Event Type:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;">%s</td></tr>
  %s
</table>
<p style="color: #64748b; font-size: 12px;">Jake Cozza DJ Services - Making moments unforgettable 🎧</p>
</div>`,
		q.Name, q.Email, q.Email, q.Phone, q.Phone, date, q.EventType, formatMessageHTML(q.Message))

	msg := EmailMessage{
		To:         m.ownerEmail,
		Subject:    fmt.Sprintf("🎵 New Quote Request: %s for %s", q.EventType, q.Name),
		Body:       body,
		HTML:       html,
		Categories: []string{"quote_notification", eventTypeSlug(q.EventType)},
	}
	if err := m.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: owner notification: %w", err)
	}
	return nil
}

// ConfirmCustomer sends the thank-you confirmation to the requester.
func (m *QuoteMailer) ConfirmCustomer(ctx context.Context, q *intake.QuoteRequest) error {
	date := formatEventDate(q.EventDate)

	body := fmt.Sprintf(`🎧 Thank You, %s!

Your quote request has been received for your %s on %s.

What happens next?
- I'll review your request within 24 hours
- I'll contact you to discuss your event details and music preferences
- I'll provide a custom quote tailored to your needs
- We'll work together to make your event unforgettable!

Contact me anytime:
📞 Phone: (312) 438-8771
📧 Email: jakecozza.dj@gmail.com

Best regards,
Jake Cozza
Professional DJ Services
Indianapolis Area
`, q.Name, q.EventType, date)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #6366f1;">🎧 Thank You, %s!</h2>
<p>Your quote request has been received. I'm excited about the possibility of providing DJ services for your <strong>%s</strong> on <strong>%s</strong>.</p>
<div style="background: #f8faff; padding: 16px; border-radius: 8px; border-left: 4px solid #10b981;">
  <h3>🎵 What happens next?</h3>
  <ul>
    <li>I'll review your request within 24 hours</li>
    <li>I'll contact you to discuss your event details and music preferences</li>
    <li>I'll provide a custom quote tailored to your needs</li>
    <li>We'll work together to make your event unforgettable!</li>
  </ul>
</div>
<p>Questions in the meantime? Call <a href="tel:(312)438-8771">(312) 438-8771</a> or email <a href="mailto:jakecozza.dj@gmail.com">jakecozza.dj@gmail.com</a>.</p>
<p>Best regards,<br><strong>Jake Cozza</strong><br>Professional DJ Services<br>Indianapolis Area</p>
</div>`,
		q.Name, q.EventType, date)

	msg := EmailMessage{
		To:         q.Email,
		ToName:     q.Name,
		Subject:    "🎧 Thank you for your quote request - Jake Cozza DJ Services",
		Body:       body,
		HTML:       html,
		Categories: []string{"customer_confirmation", eventTypeSlug(q.EventType)},
	}
	if err := m.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: customer confirmation: %w", err)
	}
	return nil
}

// formatEventDate renders an ISO date as a long human date, falling back
// to the raw value if it doesn't parse.
func formatEventDate(isoDate string) string {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format("Monday, January 2, 2006")
}

func formatMessageText(message *string) string {
	if message == nil {
		return ""
	}
	return fmt.Sprintf("\n💬 Additional Details:\n%s\n", *message)
}

func formatMessageHTML(message *string) string {
	if message == nil {
		return ""
	}
	return fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;"><strong>Details:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e2e8f0;">%s</td></tr>`, *message)
}

func eventTypeSlug(eventType string) string {
	return strings.ReplaceAll(strings.ToLower(eventType), " ", "_")
}

// Ensure interface compliance
var _ intake.Notifier = (*QuoteMailer)(nil)
