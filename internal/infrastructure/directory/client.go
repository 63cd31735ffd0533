// Package directory implements the HTTP client for the public-apis.org
// directory upstream.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/carboncell/user-auth/internal/api/metrics"
	"github.com/carboncell/user-auth/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client fetches the entry list from the configured base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given upstream URL. A non-positive
// timeout falls back to defaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// entryList mirrors the upstream response envelope.
type entryList struct {
	Count   int               `json:"count"`
	Entries []domain.APIEntry `json:"entries"`
}

// Fetch retrieves the full directory entry list. A non-2xx upstream status
// is reported as a domain.UpstreamStatusError so handlers can pass
// client-class statuses through.
func (c *Client) Fetch(ctx context.Context) ([]domain.APIEntry, error) {
	start := time.Now()
	entries, err := c.fetch(ctx)

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.DirectoryFetchDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	return entries, err
}

func (c *Client) fetch(ctx context.Context) ([]domain.APIEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var list entryList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}
	return list.Entries, nil
}
