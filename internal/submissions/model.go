// Package submissions normalizes, filters and summarizes stored quote
// requests for the admin dashboard, regardless of which backing store
// produced them.
package submissions

import "time"

// Submission is the aggregator's view of a stored quote request. Contact
// fields default to empty text when the source record lacks them.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventType string    `json:"eventType"`
	EventDate string    `json:"eventDate"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats holds the dashboard summary counters. Field names mirror the
// dashboard payload.
type Stats struct {
	Total    int `json:"total_requests"`
	Pending  int `json:"pending_requests"`
	Accepted int `json:"accepted_requests"`
	Last7    int `json:"requests_last_7_days"`
}
