// Package sheets fetches spreadsheet CSV exports and caches the built
// results for a bounded lifetime.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fetches CSV text from a spreadsheet export endpoint.
type Client struct {
	http *http.Client
}

// NewClient builds a fetcher with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// FetchCSV performs a GET against the export URL. Non-2xx responses and
// blank bodies are errors so callers can fall back to bundled data.
func (c *Client) FetchCSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("sheet request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet body: %w", err)
	}
	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("sheet returned empty content")
	}
	return text, nil
}
