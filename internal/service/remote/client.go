// Package remote implements the service ports over HTTP against the
// platform services that own the data. One Client carries the shared
// transport configuration; the per-port types layer resource paths on
// top of it.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client is the shared HTTP transport for all platform service calls.
// Construct it once and hand it to every per-port client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// NewClient builds the shared transport. baseURL is the platform
// service root without a trailing slash.
func NewClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// getJSON fetches path and decodes the response into dst. It reports
// found=false for a 404 without touching dst, which the ports surface
// as (nil, nil).
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) (bool, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return false, errors.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, errors.Wrapf(err, "GET %s: decode response", path)
	}
	return true, nil
}

// getList fetches a collection resource. Collection reads have no
// not-found state: a 404 and a JSON null body both come back as the
// empty slice, never nil.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var items []T
	if _, err := c.getJSON(ctx, path, query, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// send issues a body-carrying request and optionally decodes the
// response into dst. Any non-2xx status is an error; writes have no
// not-found convention.
func (c *Client) send(ctx context.Context, method, path string, payload, dst any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "encode payload")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return errors.Wrapf(err, "%s %s: decode response", method, path)
		}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dst any) error {
	return c.send(ctx, http.MethodPost, path, payload, dst)
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) error {
	return c.send(ctx, http.MethodPut, path, payload, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}
