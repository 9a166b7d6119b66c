package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-stac-browser/pkg/stac"
)

// Middleware manipulates an outgoing *http.Request before it is executed.
// The context is provided for cancellation and to support auth implementations
// that may need to perform async operations (e.g., token refresh).
type Middleware func(context.Context, *http.Request) error

// ClientOption configures the Client.
type ClientOption func(*Client)

// Client fetches STAC documents over HTTP and wraps them in stac views.
// It implements stac.Fetcher, so every view it returns navigates through
// the same client.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    http.Header
	middleware []Middleware
	logger     log.Logger
	validate   bool
}

var _ stac.Fetcher = (*Client)(nil)

// -----------------------------------------------------------------------------
// Client options
// -----------------------------------------------------------------------------

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithMiddleware registers one or more request-middleware functions.
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) { c.middleware = append(c.middleware, mw...) }
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		if key != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithLogger sets the logger used for request lifecycle events.
func WithLogger(logger log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithValidation makes every view returned by the client validate its
// document against the bundled schema at construction.
func WithValidation(validate bool) ClientOption {
	return func(c *Client) { c.validate = validate }
}

// NewClient creates a client rooted at baseURL. Relative hrefs found in
// documents are resolved against it.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if !u.IsAbs() {
		return nil, errors.Errorf("base URL %q must be absolute", baseURL)
	}

	if u.Path != "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if u.RawPath != "" && !strings.HasSuffix(u.RawPath, "/") {
		u.RawPath += "/"
	}
	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    make(http.Header),
		logger:     log.NewNopLogger(),
	}
	c.headers.Set("Accept", "application/json, application/geo+json")
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns a copy of the client's base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// ViewOptions returns the options the client applies to views it builds.
func (c *Client) ViewOptions() []stac.Option {
	return []stac.Option{stac.WithFetcher(c), stac.WithValidation(c.validate)}
}

// Get fetches rawURL, resolved against the base URL, with params merged
// into its query, and decodes the JSON object it returns. Non-2xx
// responses are returned as *APIError.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (stac.Document, error) {
	u, err := c.resolve(rawURL, params)
	if err != nil {
		return nil, err
	}

	level.Debug(c.logger).Log("message", "fetching document", "url", u)
	resp, err := c.doRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		level.Error(c.logger).Log("message", "request failed", "url", u, "error", err)
		return nil, errors.Wrapf(err, "error fetching %s", u)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp, u.String())
		level.Error(c.logger).Log("message", "unexpected status", "url", u, "status", resp.StatusCode)
		return nil, apiErr
	}

	var doc stac.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "error decoding response from %s", u)
	}
	if doc == nil {
		return nil, errors.Errorf("response from %s is not a JSON object", u)
	}
	return doc, nil
}

// resolve turns an href into an absolute URL and appends params to any
// query it already carries.
func (c *Client) resolve(rawURL string, params url.Values) (*url.URL, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid URL %q", rawURL)
	}
	u := c.baseURL.ResolveReference(ref)
	if len(params) == 0 {
		return u, nil
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u, nil
}

// -----------------------------------------------------------------------------
// doRequest: one place to build a request, run middleware, and execute it.
// -----------------------------------------------------------------------------
func (c *Client) doRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating request for %s", rawURL)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	// Apply all registered middleware in order.
	for _, mw := range c.middleware {
		if err := mw(ctx, req); err != nil {
			return nil, errors.Wrapf(err, "error applying middleware for %s", rawURL)
		}
	}

	return c.httpClient.Do(req)
}
