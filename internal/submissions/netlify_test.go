package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newNetlifyTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *NetlifySource) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source, err := NewNetlifySource(NetlifyConfig{
		BaseURL:  srv.URL,
		APIToken: "test-token",
		FormID:   "form-123",
	})
	if err != nil {
		t.Fatalf("new netlify source: %v", err)
	}
	return srv, source
}

func TestNewNetlifySourceRequiresCredentials(t *testing.T) {
	if _, err := NewNetlifySource(NetlifyConfig{FormID: "form-123"}); err == nil {
		t.Error("expected error without API token")
	}
	if _, err := NewNetlifySource(NetlifyConfig{APIToken: "tok"}); err == nil {
		t.Error("expected error without form id")
	}
}

func TestNetlifySourceList(t *testing.T) {
	_, source := newNetlifyTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forms/form-123/submissions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"n-1","state":"read","data":{"name":"Dana Smith","email":"dana@example.com","phone":"3124388771","eventType":"Wedding","eventDate":"2026-06-20","message":"hi"}},
			{"id":"n-2","state":"new","data":{"email":"lee@example.com","event_type":"Corporate Event","event_date":"2026-07-01"}}
		]`))
	})

	subs, err := source.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(subs))
	}

	if subs[0].Status != StatusAccepted {
		t.Errorf("expected read state mapped to accepted, got %q", subs[0].Status)
	}
	if subs[0].EventType != "Wedding" {
		t.Errorf("expected camelCase data key, got %q", subs[0].EventType)
	}

	if subs[1].Status != StatusPending {
		t.Errorf("expected new state mapped to pending, got %q", subs[1].Status)
	}
	if subs[1].Name != "Unknown" {
		t.Errorf("expected missing name to default to Unknown, got %q", subs[1].Name)
	}
	if subs[1].EventType != "Corporate Event" {
		t.Errorf("expected snake_case fallback key, got %q", subs[1].EventType)
	}
}

func TestNetlifySourceListAPIError(t *testing.T) {
	_, source := newNetlifyTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	if _, err := source.List(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestNetlifySourceUpdateStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]map[string]string

	_, source := newNetlifyTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	if err := source.UpdateStatus(context.Background(), "n-1", StatusAccepted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/submissions/n-1" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotBody["submission"]["state"] != "read" {
		t.Errorf("expected accepted mapped to read state, got %q", gotBody["submission"]["state"])
	}

	if err := source.UpdateStatus(context.Background(), "n-1", StatusPending); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if gotBody["submission"]["state"] != "new" {
		t.Errorf("expected pending mapped to new state, got %q", gotBody["submission"]["state"])
	}
}

func TestNetlifySourceUpdateStatusNotFound(t *testing.T) {
	_, source := newNetlifyTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	err := source.UpdateStatus(context.Background(), "missing", StatusAccepted)
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}
