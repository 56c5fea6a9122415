package abe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the HTTP wrapper for the ABE events API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an ABE client. A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP creates an ABE client that sends requests through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL, DefaultTimeout)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// EventsURL builds the listing URL for req.
func (c *Client) EventsURL(req ListEventsRequest) (string, error) {
	if req.Start.IsZero() != req.End.IsZero() {
		return "", ErrIncompleteRange
	}

	u := c.baseURL + eventsPath
	if req.hasRange() {
		u += fmt.Sprintf("?start=%s&end=%s",
			url.QueryEscape(req.Start.Format(queryDateFormat)),
			url.QueryEscape(req.End.Format(queryDateFormat)))
	}
	return u, nil
}

// ListEvents fetches events via GET /events/ and returns each array element undecoded.
// An empty array is a valid result.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]json.RawMessage, error) {
	u, err := c.EventsURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list events request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return items, nil
}
