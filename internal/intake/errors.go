package intake

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies which validation rule a quote request violated.
type ErrorKind string

const (
	KindMissingFields    ErrorKind = "missing_fields"
	KindInvalidEmail     ErrorKind = "invalid_email"
	KindInvalidPhone     ErrorKind = "invalid_phone"
	KindInvalidEventDate ErrorKind = "invalid_event_date"
	KindPastEventDate    ErrorKind = "past_event_date"
)

// ValidationError reports the first violated rule, with enough structure
// for the caller to render per-field messages. MissingFields carries the
// full set of absent field names.
type ValidationError struct {
	Kind   ErrorKind `json:"kind"`
	Fields []string  `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingFields:
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
	case KindInvalidEmail:
		return "invalid email address"
	case KindInvalidPhone:
		return "invalid phone number"
	case KindInvalidEventDate:
		return "event date must be a valid calendar date"
	case KindPastEventDate:
		return "event date cannot be in the past"
	}
	return string(e.Kind)
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ErrQuoteNotFound is returned when a quote request is not found
var ErrQuoteNotFound = errors.New("quote request not found")
