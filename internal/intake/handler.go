package intake

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/jakecozza/djservices/internal/observability/metrics"
	"github.com/jakecozza/djservices/pkg/logging"
)

// Notifier sends the two quote-request emails. The two sends are
// independent: either may fail without affecting the other.
type Notifier interface {
	NotifyOwner(ctx context.Context, q *QuoteRequest) error
	ConfirmCustomer(ctx context.Context, q *QuoteRequest) error
}

// Handler handles HTTP requests for quote intake. Repository and notifier
// are optional capabilities: a nil repo means submissions aren't persisted,
// a nil notifier means no emails go out. Neither failure mode fails the
// request once validation has passed.
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.IntakeMetrics
	logger   *logging.Logger
	now      func() time.Time
}

// NewHandler creates a new intake handler
func NewHandler(repo Repository, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Effects reports which side effects succeeded for an accepted submission.
type Effects struct {
	Saved            bool `json:"saved"`
	OwnerNotified    bool `json:"ownerNotified"`
	ConfirmationSent bool `json:"confirmationSent"`
}

type contactResponse struct {
	Message string        `json:"message"`
	Data    *QuoteRequest `json:"data"`
	Effects Effects       `json:"effects"`
}

type validationResponse struct {
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
	Fields  []string  `json:"fields,omitempty"`
}

// CreateQuote handles POST /api/contact requests
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode contact request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		h.metrics.ObserveSubmission("bad_request")
		return
	}

	quote, err := Validate(req, h.now())
	if err != nil {
		verr, _ := AsValidationError(err)
		h.logger.Info("quote request rejected", "kind", verr.Kind, "fields", verr.Fields)
		h.metrics.ObserveSubmission("rejected")
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: verr.Error(),
			Kind:    verr.Kind,
			Fields:  verr.Fields,
		})
		return
	}

	effects := Effects{}

	if h.repo != nil {
		stored, err := h.repo.Insert(r.Context(), quote)
		if err != nil {
			// Persistence is a side effect here: the owner still gets the
			// email, so the submission is not lost.
			h.logger.Error("failed to persist quote request", "error", err)
		} else {
			quote = stored
			effects.Saved = true
		}
	}

	if h.notifier != nil {
		var wg sync.WaitGroup
		var ownerErr, confirmErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			ownerErr = h.notifier.NotifyOwner(r.Context(), quote)
		}()
		go func() {
			defer wg.Done()
			confirmErr = h.notifier.ConfirmCustomer(r.Context(), quote)
		}()
		wg.Wait()

		if ownerErr != nil {
			h.logger.Error("owner notification failed", "error", ownerErr)
		} else {
			effects.OwnerNotified = true
		}
		h.metrics.ObserveEmail("owner_notification", ownerErr == nil)

		if confirmErr != nil {
			h.logger.Error("customer confirmation failed", "error", confirmErr, "to", quote.Email)
		} else {
			effects.ConfirmationSent = true
		}
		h.metrics.ObserveEmail("customer_confirmation", confirmErr == nil)
	}

	h.logger.Info("quote request received",
		"id", quote.ID,
		"event_type", quote.EventType,
		"event_date", quote.EventDate,
		"saved", effects.Saved,
	)
	h.metrics.ObserveSubmission("accepted")
	h.metrics.ObserveIntakeLatency(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, contactResponse{
		Message: "Quote request received successfully!",
		Data:    quote,
		Effects: effects,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
