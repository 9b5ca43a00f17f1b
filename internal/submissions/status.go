package submissions

import (
	"errors"
	"strings"
)

// Status is the canonical lifecycle state of a submission. Exactly two
// values exist; everything provider-specific is normalized into them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// ErrInvalidStatus is returned when a status is not one of the two canonical values
var ErrInvalidStatus = errors.New(`status must be either "pending" or "accepted"`)

// Valid reports whether s is one of the two canonical values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusAccepted
}

// ParseStatus parses a canonical status, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// NormalizeStatus resolves a provider-native lifecycle tag to a canonical
// status. A valid override always wins; otherwise tags that mean the
// operator has acted ("read", "responded", or an already-canonical
// "accepted") map to accepted and everything else, including unknown or
// new states, maps to pending.
func NormalizeStatus(rawState string, override *Status) Status {
	if override != nil && override.Valid() {
		return *override
	}
	switch strings.ToLower(strings.TrimSpace(rawState)) {
	case "read", "responded", string(StatusAccepted):
		return StatusAccepted
	default:
		return StatusPending
	}
}
