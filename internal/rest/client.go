package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultTimeout is the HTTP client timeout applied when the caller does
// not supply one.
const DefaultTimeout = 30 * time.Second

// decodableContentTypes are the Content-Type fragments for which the
// response body is run through the structured decoder. Anything else
// (octet streams, raw file downloads, CI job traces) is handed back as
// raw bytes regardless of the requested decode flag.
var decodableContentTypes = []string{"json", "xml", "yaml", "x-www-form-urlencoded"}

// Config configures the transport client.
type Config struct {
	// BaseURL is the API root, e.g. "https://gitlab.example.com/api/v4".
	// Required.
	BaseURL string
	// MaxRetries bounds the retry attempts performed by the underlying
	// HTTP client for 429/5xx responses and connection errors. Zero
	// disables retrying entirely.
	MaxRetries int
	// Timeout applies to each HTTP attempt. Defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the constructed retrying client when set.
	HTTPClient *http.Client
	// Logger receives per-request debug lines and is handed to the
	// retrying client. Defaults to a no-op logger.
	Logger hclog.Logger
}

// Client executes single HTTP calls against the configured base URL and
// normalizes every outcome into one of: decoded data, an absent-value
// response (GET receiving 404), or an *Error.
//
// The client itself performs no retries; retry-on-429/5xx is the job of
// the underlying retrying HTTP client built at construction.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

// NewClient creates a transport client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg.MaxRetries, cfg.Timeout, logger)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CallOptions carries the per-call request and decode parameters.
type CallOptions struct {
	// Query is appended to the request URL. Used by read verbs.
	Query url.Values
	// Body is JSON-encoded into the request body. Used by write verbs.
	Body any
	// Headers are set on the request verbatim (auth, sudo).
	Headers http.Header
	// Decode requests structured decoding of the response body into
	// Result. Ignored when the content-type guard trips.
	Decode bool
	// Result receives the decoded response body when Decode is true.
	Result any
}

// Response is the normalized outcome of a single call.
type Response struct {
	// Status is the HTTP status code.
	Status int
	// Absent is true for the single exempted outcome: a GET that
	// received 404. No other verb/status pair sets it.
	Absent bool
	// Raw holds the response body bytes. Always populated (except for
	// the absent case), whether or not decoding took place.
	Raw []byte
	// Decoded is true when Result was populated from the body.
	Decoded bool
	// Header is the response header set, for content-type inspection.
	Header http.Header
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodHead, path, opts)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// Options issues an OPTIONS request.
func (c *Client) Options(ctx context.Context, path string, opts *CallOptions) (*Response, error) {
	return c.Do(ctx, http.MethodOptions, path, opts)
}

// Do executes exactly one logical HTTP call and normalizes the outcome.
//
// A GET receiving 404 returns a Response with Absent set and a nil error;
// every other status >= 400 returns an *Error carrying verb, path, base
// URL, status, server error text and a one-line body dump. On success the
// body is decoded into opts.Result when requested and the content type is
// a structured format.
func (c *Client) Do(ctx context.Context, method, path string, opts *CallOptions) (*Response, error) {
	if opts == nil {
		opts = &CallOptions{}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range opts.Headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if len(opts.Query) > 0 {
		req.URL.RawQuery = opts.Query.Encode()
	}

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Verb: method, URL: c.baseURL + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	// The single verb/status pair exempted from failure treatment.
	if method == http.MethodGet && resp.StatusCode == http.StatusNotFound {
		return &Response{Status: resp.StatusCode, Absent: true, Header: resp.Header}, nil
	}

	if resp.StatusCode >= 400 {
		return nil, newError(method, path, c.baseURL, resp.StatusCode, raw)
	}

	result := &Response{Status: resp.StatusCode, Raw: raw, Header: resp.Header}

	if opts.Decode && opts.Result != nil && len(raw) > 0 && decodable(resp.Header.Get("Content-Type")) {
		if err := json.Unmarshal(raw, opts.Result); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
		result.Decoded = true
	}

	return result, nil
}

// decodable reports whether the Content-Type names a structured format
// that is safe to run through the decoder.
func decodable(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, fragment := range decodableContentTypes {
		if strings.Contains(ct, fragment) {
			return true
		}
	}
	return false
}
