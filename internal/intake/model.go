package intake

import "time"

// StatusPending is the status every quote request carries at creation.
// The admin dashboard owns the lifecycle after that.
const StatusPending = "pending"

// QuoteRequest is a validated, normalized quote request.
type QuoteRequest struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventDate string    `json:"eventDate"`
	EventType string    `json:"eventType"`
	Message   *string   `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CreateQuoteRequest is the raw contact-form payload before validation.
type CreateQuoteRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate"`
	EventType string `json:"eventType"`
	Message   string `json:"message"`
}
