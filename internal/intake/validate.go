package intake

import (
	"regexp"
	"strings"
	"time"
)

const eventDateLayout = "2006-01-02"

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStripRe = regexp.MustCompile(`[\s().\-]`)
	phoneRe      = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// Validate checks a raw contact-form payload and returns the normalized
// QuoteRequest. It is pure: "today" comes from now, truncated to midnight
// in now's location. Checks run in a fixed order and stop at the first
// failure, except the required-field check which reports every missing
// field at once.
func Validate(req CreateQuoteRequest, now time.Time) (*QuoteRequest, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	eventDate := strings.TrimSpace(req.EventDate)
	eventType := strings.TrimSpace(req.EventType)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if eventDate == "" {
		missing = append(missing, "eventDate")
	}
	if eventType == "" {
		missing = append(missing, "eventType")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Kind: KindMissingFields, Fields: missing}
	}

	if !ValidEmail(email) {
		return nil, &ValidationError{Kind: KindInvalidEmail, Fields: []string{"email"}}
	}

	day, err := time.Parse(eventDateLayout, eventDate)
	if err != nil {
		return nil, &ValidationError{Kind: KindInvalidEventDate, Fields: []string{"eventDate"}}
	}
	if dateBefore(day, now) {
		return nil, &ValidationError{Kind: KindPastEventDate, Fields: []string{"eventDate"}}
	}

	canonicalPhone, ok := NormalizePhone(phone)
	if !ok {
		return nil, &ValidationError{Kind: KindInvalidPhone, Fields: []string{"phone"}}
	}

	out := &QuoteRequest{
		Name:      name,
		Email:     email,
		Phone:     canonicalPhone,
		EventDate: day.Format(eventDateLayout),
		EventType: eventType,
		Status:    StatusPending,
	}
	// An all-whitespace message is indistinguishable from no message; both
	// normalize to an absent marker rather than an empty string.
	if msg := strings.TrimSpace(req.Message); msg != "" {
		out.Message = &msg
	}
	return out, nil
}

// ValidEmail reports whether s has a basic local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// NormalizePhone strips spaces, parentheses, hyphens and dots, then requires
// an optional leading + followed by 1-16 digits with a non-zero first digit.
// It returns the canonical stripped form.
func NormalizePhone(s string) (string, bool) {
	clean := phoneStripRe.ReplaceAllString(s, "")
	if !phoneRe.MatchString(clean) {
		return "", false
	}
	return clean, true
}

// dateBefore reports whether day falls strictly before now's calendar date.
// Time of day is ignored on both sides.
func dateBefore(day, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
