package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client posts JSON notifications to a configured webhook endpoint.
type Client interface {
	Post(ctx context.Context, payload any) error
}

// HTTPClient is a resty-backed implementation of Client.
type HTTPClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given endpoint URL.
func NewClient(url string) *HTTPClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &HTTPClient{
		httpClient: restyClient,
		url:        url,
	}
}

// Post sends the payload, treating any non-2xx response as an error.
func (c *HTTPClient) Post(ctx context.Context, payload any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook endpoint error: code=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
