// Package client talks to a running logbay daemon over its HTTP API. It is
// the transport layer behind the CLI commands.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logbay/internal/catalog"
	"logbay/internal/serviceinfo"
)

// ErrNotFound reports a 404 from the daemon: unknown service, unknown log,
// or a file rotated away between listing and fetch.
var ErrNotFound = errors.New("not found")

// Kind selects which catalog a request targets.
type Kind string

const (
	KindSystem  Kind = "system"
	KindService Kind = "service"
)

func (k Kind) segment() string {
	if k == KindSystem {
		return "system-logs"
	}
	return "service-logs"
}

// Client is an HTTP client for the logbay daemon API.
type Client struct {
	base  *url.URL
	http  *http.Client
	token string
}

// New builds a client for the given address. A bare "host:port" is promoted
// to an http URL. token, when non-empty, is sent as a bearer token.
func New(address, token string) (*Client, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("daemon address is required")
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	base, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base:  base,
		http:  &http.Client{Timeout: 30 * time.Second},
		token: token,
	}, nil
}

// ListSources returns every source in one catalog.
func (c *Client) ListSources(ctx context.Context, kind Kind) ([]catalog.EndpointView, error) {
	var views []catalog.EndpointView
	if err := c.getJSON(ctx, []string{kind.segment()}, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// DescribeSource returns one source's endpoint view.
func (c *Client) DescribeSource(ctx context.Context, kind Kind, service string) (catalog.EndpointView, error) {
	var view catalog.EndpointView
	if err := c.getJSON(ctx, []string{kind.segment(), service}, &view); err != nil {
		return catalog.EndpointView{}, err
	}
	return view, nil
}

// FetchLog returns the bounded tail of one log as plain text.
func (c *Client) FetchLog(ctx context.Context, kind Kind, service, log string) (string, error) {
	resp, err := c.get(ctx, []string{kind.segment(), service, log}, "text/plain")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read log body: %w", err)
	}
	return string(body), nil
}

// ServiceInfo returns the daemon's static self-description document.
func (c *Client) ServiceInfo(ctx context.Context) (serviceinfo.Document, error) {
	var doc serviceinfo.Document
	if err := c.getJSON(ctx, []string{"service-info"}, &doc); err != nil {
		return serviceinfo.Document{}, err
	}
	return doc, nil
}

func (c *Client) getJSON(ctx context.Context, segments []string, out any) error {
	resp, err := c.get(ctx, segments, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, segments []string, accept string) (*http.Response, error) {
	endpoint := c.base.JoinPath(segments...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		message := notFoundMessage(resp.Body)
		resp.Body.Close()
		if message != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, message)
		}
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("daemon returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// notFoundMessage extracts the daemon's error message from a JSON 404 body,
// if one was sent; bare 404s have no body.
func notFoundMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
