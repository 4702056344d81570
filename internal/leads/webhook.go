package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrWebhookInactive marks a webhook whose listener is idle. Test-mode
// webhooks answer 404 until armed, so the lead is valid but nobody is
// listening; callers report this as a soft outcome, not a delivery failure.
var ErrWebhookInactive = errors.New("webhook não está ativo")

// WebhookClient posts the lead payload as JSON to the automation webhook.
type WebhookClient struct {
	http httpDoer
	url  string
}

func NewWebhookClient(endpoint string, timeout time.Duration) (*WebhookClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("webhook url required")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookClient{
		http: &http.Client{Timeout: timeout},
		url:  endpoint,
	}, nil
}

func (c *WebhookClient) Deliver(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("webhook returned status 404: %w", ErrWebhookInactive)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SheetAppendClient posts the lead as form fields to the spreadsheet's
// append endpoint.
type SheetAppendClient struct {
	http httpDoer
	url  string
}

func NewSheetAppendClient(endpoint string, timeout time.Duration) (*SheetAppendClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("sheet append url required")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid sheet append url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SheetAppendClient{
		http: &http.Client{Timeout: timeout},
		url:  endpoint,
	}, nil
}

func (c *SheetAppendClient) Deliver(ctx context.Context, payload Payload) error {
	form := url.Values{}
	form.Set("name", payload.Name)
	form.Set("email", payload.Email)
	form.Set("whatsapp", payload.WhatsApp)
	if payload.City != "" {
		form.Set("city", payload.City)
	}
	form.Set("timestamp", payload.Timestamp)
	form.Set("source", payload.Source)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sheet append request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post sheet append: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheet append returned status %d", resp.StatusCode)
	}
	return nil
}
