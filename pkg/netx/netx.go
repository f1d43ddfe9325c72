// Package netx provides small JSON HTTP helpers. No core flow uses them;
// they exist for clients built on top of the API.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client wraps an http.Client with JSON conveniences.
type Client struct {
	http *http.Client
}

// New creates a Client. A nil hc falls back to http.DefaultClient.
func New(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc}
}

// GetJSON fetches url and decodes the response body into T.
func GetJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	return do[T](ctx, c, http.MethodGet, url, nil)
}

// PostJSON sends body as JSON and decodes the response into T.
func PostJSON[T any](ctx context.Context, c *Client, url string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, url, body)
}

// PutJSON sends body as JSON and decodes the response into T.
func PutJSON[T any](ctx context.Context, c *Client, url string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, url, body)
}

// DeleteJSON issues a DELETE and decodes the response into T.
func DeleteJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, url, nil)
}

func do[T any](ctx context.Context, c *Client, method, url string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return zero, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return zero, fmt.Errorf("%s %s: %s; body: %s", method, url, resp.Status, string(b))
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
