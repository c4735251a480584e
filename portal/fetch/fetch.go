// Package fetch performs the blocking GET against the message API.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"portal/portal/message"
)

const (
	// DefaultBaseURL is the public message API.
	DefaultBaseURL = "https://ancient-mountain-86014.herokuapp.com"

	PathHello = "/api/hello"
	PathClick = "/api/click"
)

// Doer sends a request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

// Client fetches and decodes messages.
type Client struct {
	HTTP    Doer
	BaseURL string
}

// New returns a Client for baseURL. A nil doer uses http.DefaultClient.
func New(doer Doer, baseURL string) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{HTTP: doer, BaseURL: strings.TrimRight(baseURL, "/")}
}

// URL joins the base URL and path.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// Raw issues one GET and returns the full body. The response is closed
// before Raw returns.
func (c *Client) Raw(ctx context.Context, path string) ([]byte, error) {
	url := c.URL(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", url, err)
	}
	return body, nil
}

// Get fetches path and decodes the body.
func (c *Client) Get(ctx context.Context, path string) (message.Message, error) {
	body, err := c.Raw(ctx, path)
	if err != nil {
		return message.Message{}, err
	}
	m, err := message.Decode(body)
	if err != nil {
		return message.Message{}, fmt.Errorf("fetch %s: %w", c.URL(path), err)
	}
	return m, nil
}
