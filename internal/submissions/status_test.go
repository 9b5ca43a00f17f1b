package submissions

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"accepted", StatusAccepted, false},
		{"  Accepted ", StatusAccepted, false},
		{"PENDING", StatusPending, false},
		{"archived", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q): expected ErrInvalidStatus, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestNormalizeStatusProviderStates(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"read", StatusAccepted},
		{"responded", StatusAccepted},
		{"accepted", StatusAccepted},
		{"Read", StatusAccepted},
		{"new", StatusPending},
		{"pending", StatusPending},
		{"spam", StatusPending},
		{"", StatusPending},
		{"garbage", StatusPending},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw, nil); got != tc.want {
			t.Errorf("NormalizeStatus(%q, nil) = %q; want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeStatusOverrideWins(t *testing.T) {
	accepted := StatusAccepted
	pending := StatusPending

	if got := NormalizeStatus("new", &accepted); got != StatusAccepted {
		t.Errorf("expected override accepted, got %q", got)
	}
	if got := NormalizeStatus("read", &pending); got != StatusPending {
		t.Errorf("expected override pending to win over read state, got %q", got)
	}

	bogus := Status("archived")
	if got := NormalizeStatus("read", &bogus); got != StatusAccepted {
		t.Errorf("expected invalid override to be ignored, got %q", got)
	}
}

func TestNormalizeStatusIdempotent(t *testing.T) {
	for _, raw := range []string{"read", "new", "responded", "whatever"} {
		once := NormalizeStatus(raw, nil)
		twice := NormalizeStatus(string(once), nil)
		if once != twice {
			t.Errorf("NormalizeStatus not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}
