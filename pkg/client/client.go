// Package client calls a running scheduler API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Yhrjkcz1/COS/internal/requests"
	"github.com/Yhrjkcz1/COS/internal/responses"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Rule       string
	ProcessId  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scheduler api: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Schedule runs one algorithm ("fcfs", "sjf", "srtf", "priority", "rr").
func (c *Client) Schedule(ctx context.Context, algorithm string, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/"+algorithm, request, &response)
	return response, err
}

// Compare runs every algorithm over the same process set.
func (c *Client) Compare(ctx context.Context, request requests.ScheduleRequests) (responses.ComparisonResponse, error) {
	var response responses.ComparisonResponse
	err := c.post(ctx, "/api/v1/all", request, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp responses.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
			Rule:       errResp.Rule,
			ProcessId:  errResp.ProcessId,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
