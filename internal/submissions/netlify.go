package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultNetlifyBaseURL = "https://api.netlify.com/api/v1"

// NetlifyConfig controls how the Netlify forms client behaves.
type NetlifyConfig struct {
	BaseURL    string
	APIToken   string
	FormID     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NetlifySource reads submissions from the Netlify forms API. The API has
// no canonical status of its own: submission state "read"/"responded" maps
// to accepted and everything else to pending, and status updates are
// pushed back as the equivalent provider state.
type NetlifySource struct {
	baseURL    string
	apiToken   string
	formID     string
	httpClient *http.Client
}

// NewNetlifySource creates a configured source with sane defaults.
func NewNetlifySource(cfg NetlifyConfig) (*NetlifySource, error) {
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, errors.New("submissions: netlify API token is required")
	}
	if strings.TrimSpace(cfg.FormID) == "" {
		return nil, errors.New("submissions: netlify form id is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultNetlifyBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &NetlifySource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiToken:   cfg.APIToken,
		formID:     cfg.FormID,
		httpClient: httpClient,
	}, nil
}

// netlifySubmission mirrors the wire shape of a form submission. Field
// values live in a free-form data object whose keys may be camelCase or
// snake_case depending on the form markup.
type netlifySubmission struct {
	ID        string            `json:"id"`
	Data      map[string]string `json:"data"`
	State     string            `json:"state"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// List fetches and maps all submissions for the configured form.
func (s *NetlifySource) List(ctx context.Context) ([]Submission, error) {
	url := fmt.Sprintf("%s/forms/%s/submissions", s.baseURL, s.formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("submissions: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submissions: netlify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("submissions: netlify API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw []netlifySubmission
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("submissions: decode response: %w", err)
	}

	out := make([]Submission, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapNetlifySubmission(r))
	}
	return out, nil
}

// UpdateStatus pushes the mapped provider state for a submission.
func (s *NetlifySource) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	targetState := "new"
	if status == StatusAccepted {
		targetState = "read"
	}

	payload, err := json.Marshal(map[string]any{
		"submission": map[string]string{"state": targetState},
	})
	if err != nil {
		return fmt.Errorf("submissions: marshal state: %w", err)
	}

	url := fmt.Sprintf("%s/submissions/%s", s.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("submissions: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submissions: netlify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrSubmissionNotFound
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("submissions: netlify update status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func mapNetlifySubmission(r netlifySubmission) Submission {
	data := r.Data
	if data == nil {
		data = map[string]string{}
	}
	name := data["name"]
	if name == "" {
		name = "Unknown"
	}
	return Submission{
		ID:        r.ID,
		Name:      name,
		Email:     data["email"],
		Phone:     data["phone"],
		EventType: firstOf(data, "eventType", "event_type"),
		EventDate: firstOf(data, "eventDate", "event_date"),
		Message:   data["message"],
		Status:    NormalizeStatus(r.State, nil),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func firstOf(data map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := data[k]; v != "" {
			return v
		}
	}
	return ""
}
