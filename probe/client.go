package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sagarc03/tweeter"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 10 * time.Second

// Table is the part of a route table Verify needs.
type Table interface {
	Routes() []tweeter.Route
	Fallback() tweeter.Entry
}

// Client fetches paths from a tweeter server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	// Apply defaults
	cfg = cfg.WithDefaults()

	// Normalize endpoint URL (remove trailing slash)
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEndpoint, cfg.Endpoint)
	}

	c := &Client{
		config:     &Config{Endpoint: endpoint},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Check fetches every path and returns one Result per path, in order.
// Per-path failures are reported in Result.Err; the returned error is only
// set when the input itself is invalid.
func (c *Client) Check(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		result, _ := c.fetch(ctx, p)
		results = append(results, result)
	}

	return results, nil
}

// Verify fetches every route of table, plus one random path that must miss,
// and compares status, Content-Type and body with the table's entries.
func (c *Client) Verify(ctx context.Context, table Table) ([]Verification, error) {
	if table == nil {
		return nil, fmt.Errorf("verify: %w: table is nil", tweeter.ErrInvalidInput)
	}

	routes := table.Routes()
	routes = append(routes, tweeter.Route{
		Path:  "/" + uuid.NewString(),
		Entry: table.Fallback(),
	})

	verifications := make([]Verification, 0, len(routes))
	for _, route := range routes {
		result, body := c.fetch(ctx, route.Path)
		verifications = append(verifications, compare(route, result, body))
	}

	return verifications, nil
}

func compare(route tweeter.Route, result Result, body []byte) Verification {
	v := Verification{
		Result:              result,
		ExpectedStatus:      route.Status,
		ExpectedContentType: route.ContentType,
		ExpectedSize:        int64(len(route.Content)),
	}

	if result.Err != nil {
		return v
	}

	if result.Status != route.Status {
		v.Mismatches = append(v.Mismatches, fmt.Sprintf("status: got %d, want %d", result.Status, route.Status))
	}
	if result.ContentType != route.ContentType {
		v.Mismatches = append(v.Mismatches, fmt.Sprintf("content type: got %q, want %q", result.ContentType, route.ContentType))
	}
	if !bytes.Equal(body, route.Content) {
		v.Mismatches = append(v.Mismatches, fmt.Sprintf("body: got %d bytes, want %d bytes", len(body), len(route.Content)))
	}

	return v
}

func (c *Client) fetch(ctx context.Context, path string) (Result, []byte) {
	result := Result{Path: path}

	if path == "" {
		result.Err = ErrEmptyPath
		return result, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+path, http.NoBody)
	if err != nil {
		result.Err = fmt.Errorf("create request: %w", err)
		return result, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Err = fmt.Errorf("request failed: %w", err)
		return result, nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = fmt.Errorf("read body: %w", err)
		return result, nil
	}

	result.Status = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")
	result.Size = int64(len(body))

	return result, body
}
