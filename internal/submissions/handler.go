package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jakecozza/djservices/internal/observability/metrics"
	"github.com/jakecozza/djservices/pkg/logging"
)

// Handler handles HTTP requests for the admin dashboard
type Handler struct {
	service *Service
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger
}

// NewHandler creates a new admin submissions handler
func NewHandler(service *Service, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

type listResponse struct {
	Success     bool         `json:"success"`
	Submissions []Submission `json:"submissions"`
	Stats       Stats        `json:"stats"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List handles GET /admin/submissions requests. The status query param
// defaults to "pending"; "all" disables filtering.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")
	if filter == "" {
		filter = string(StatusPending)
	}

	subs, stats, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			h.logger.Error("submission source not configured")
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "Submission store unavailable"})
			return
		}
		h.logger.Error("failed to load submissions", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Failed to load submissions"})
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Submissions: subs,
		Stats:       stats,
	})
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus handles POST /admin/submissions/status requests.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}
	if req.ID == "" || req.Status == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: `Request must include "id" and "status"`})
		return
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := h.service.SetStatus(r.Context(), req.ID, status); err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Submission not found"})
		case errors.Is(err, ErrSourceUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "Submission store unavailable"})
		default:
			h.logger.Error("failed to update status", "error", err, "id", req.ID)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Failed to update status"})
		}
		return
	}

	h.metrics.ObserveStatusUpdate(string(status))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Status updated successfully.",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
