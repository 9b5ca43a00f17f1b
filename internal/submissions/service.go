package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jakecozza/djservices/pkg/logging"
)

// ErrSourceUnavailable is returned when no submission source is configured
var ErrSourceUnavailable = errors.New("submission source unavailable")

// Service composes a Source with the optional override store. Listing
// applies overrides on top of the provider-native statuses; setting a
// status writes the override first and then pushes the provider state, so
// a flipped source never silently reverts an operator decision.
type Service struct {
	source    Source
	overrides *OverrideStore
	logger    *logging.Logger
	now       func() time.Time
}

// NewService creates a submissions service. overrides may be nil when no
// Redis is deployed; source may be nil when neither backing store is
// configured, in which case every call fails with ErrSourceUnavailable.
func NewService(source Source, overrides *OverrideStore, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		source:    source,
		overrides: overrides,
		logger:    logger,
		now:       time.Now,
	}
}

// List fetches all submissions, resolves statuses, and returns the subset
// matching the filter alongside summary stats over the full set.
func (s *Service) List(ctx context.Context, filter string) ([]Submission, Stats, error) {
	if s.source == nil {
		return nil, Stats{}, ErrSourceUnavailable
	}

	subs, err := s.source.List(ctx)
	if err != nil {
		return nil, Stats{}, err
	}

	if s.overrides != nil {
		for i := range subs {
			ov, ok, err := s.overrides.Get(ctx, subs[i].ID)
			if err != nil {
				// Override store trouble degrades to the provider-native
				// status; the listing itself must still succeed.
				s.logger.Warn("override lookup failed", "id", subs[i].ID, "error", err)
				continue
			}
			if ok {
				subs[i].Status = NormalizeStatus(string(subs[i].Status), &ov)
			}
		}
	}

	filtered := FilterByStatus(subs, filter)
	stats := Summarize(subs, s.now())
	return filtered, stats, nil
}

// SetStatus records an operator decision. The status must be canonical;
// the override write and the source update are both attempted, and the
// sequence is last-write-wins across concurrent admins.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if s.source == nil {
		return ErrSourceUnavailable
	}

	if s.overrides != nil {
		if err := s.overrides.Set(ctx, id, status, s.now().UTC()); err != nil {
			return fmt.Errorf("submissions: record override: %w", err)
		}
	}

	if err := s.source.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("submission status updated", "id", id, "status", status)
	return nil
}
