// Package matching wraps the external matching backend. The backend owns
// embeddings and scoring; this client treats it as an opaque JSON contract.
package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-genie-backend/internal/domain"
)

// Cap on how much of an upstream error body we read before forwarding it.
const maxErrorBodyBytes = 64 << 10

// UpstreamError is a non-2xx answer from the matching backend. Body holds the
// raw upstream response text, which the API forwards verbatim on a 502.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("matching backend returned status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// MatchStudents sends a normalized query to POST {backend}/match-students.
// A malformed or missing combined_results field degrades to an empty list;
// only transport failures and non-2xx statuses are errors.
func (c *Client) MatchStudents(ctx context.Context, query *domain.MatchQuery) (*domain.MatchResponse, error) {
	var raw struct {
		Queries         json.RawMessage `json:"queries"`
		CombinedResults json.RawMessage `json:"combined_results"`
	}
	if err := c.post(ctx, "/match-students", query, &raw); err != nil {
		return nil, err
	}

	out := &domain.MatchResponse{
		Queries:         map[string]any{},
		CombinedResults: []domain.MatchResult{},
	}
	if len(raw.Queries) > 0 {
		var queries map[string]any
		if err := json.Unmarshal(raw.Queries, &queries); err == nil && queries != nil {
			out.Queries = queries
		}
	}
	if len(raw.CombinedResults) > 0 {
		var results []domain.MatchResult
		if err := json.Unmarshal(raw.CombinedResults, &results); err == nil && results != nil {
			out.CombinedResults = results
		}
	}
	return out, nil
}

// RegisterStudent pushes a profile to POST {backend}/students so the backend
// can generate its summaries and embeddings. Used by the populate tool.
func (c *Client) RegisterStudent(ctx context.Context, profile *domain.StudentProfile) error {
	return c.post(ctx, "/students", profile, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("matching: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("matching: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("matching: call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(text)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("matching: decode %s response: %w", path, err)
	}
	return nil
}
