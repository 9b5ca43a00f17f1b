package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jakecozza/djservices/internal/intake"
	"github.com/jakecozza/djservices/internal/submissions"
	"github.com/jakecozza/djservices/pkg/logging"
)

type stubSource struct {
	subs []submissions.Submission
}

func (s *stubSource) List(ctx context.Context) ([]submissions.Submission, error) {
	return s.subs, nil
}

func (s *stubSource) UpdateStatus(ctx context.Context, id string, status submissions.Status) error {
	return nil
}

func newTestRouter(t *testing.T, adminToken string) http.Handler {
	t.Helper()

	logger := logging.Default()
	repo := intake.NewInMemoryRepository()
	intakeHandler := intake.NewHandler(repo, nil, nil, logger)

	source := &stubSource{subs: []submissions.Submission{
		{ID: "sub-1", Name: "Dana", Status: submissions.StatusPending, CreatedAt: time.Now()},
	}}
	service := submissions.NewService(source, nil, logger)
	adminHandler := submissions.NewHandler(service, nil, logger)

	cfg := &Config{
		Logger:        logger,
		IntakeHandler: intakeHandler,
		AdminHandler:  adminHandler,
		AdminToken:    adminToken,
	}

	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterContactEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	payload := intake.CreateQuoteRequest{
		Name:      "Router Test",
		Email:     "router@example.com",
		Phone:     "(312) 438-8771",
		EventDate: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		EventType: "Wedding",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestRouterAdminRequiresToken(t *testing.T) {
	router := newTestRouter(t, "admin-secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRouterAdminWithToken(t *testing.T) {
	router := newTestRouter(t, "admin-secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions?status=all", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Success     bool                     `json:"success"`
		Submissions []submissions.Submission `json:"submissions"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success response")
	}
	if len(resp.Submissions) != 1 {
		t.Errorf("expected 1 submission, got %d", len(resp.Submissions))
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
