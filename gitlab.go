package gitlab

import (
	"context"
	"net/http"
	"reflect"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-hclog"

	"github.com/gitlabapi/client-go/internal/rest"
)

// Client is a GitLab API client. A Client is immutable after
// construction; impersonation produces a new instance via Sudo.
//
// Tokens are captured into accessor closures at construction so that
// dumping the client (fmt %v/%+v) never prints a literal token value.
type Client struct {
	rest    *rest.Client
	baseURL string
	logger  hclog.Logger

	oauthToken   func() string
	privateToken func() string
	sudo         string
}

// New creates a GitLab API client. A base URL is required; credentials
// are optional and independent (an OAuth token, a private token, or
// both; no mutual exclusion is enforced).
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFromConfig(cfg)
}

func newFromConfig(cfg clientConfig) (*Client, error) {
	if cfg.baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	logger := cfg.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	restClient, err := rest.NewClient(rest.Config{
		BaseURL:    cfg.baseURL,
		MaxRetries: cfg.retries,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		rest:    restClient,
		baseURL: restClient.BaseURL(),
		logger:  logger,
		sudo:    cfg.sudo,
	}

	// Capture tokens into closures so nothing on the client retains the
	// literal values.
	if cfg.oauthToken != "" {
		tok := cfg.oauthToken
		c.oauthToken = func() string { return tok }
	}
	if cfg.privateToken != "" {
		tok := cfg.privateToken
		c.privateToken = func() string { return tok }
	}
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// OAuthToken returns the configured OAuth token, or "" when none is set.
// This accessor is the only way to reach the token after construction.
func (c *Client) OAuthToken() string {
	if c.oauthToken == nil {
		return ""
	}
	return c.oauthToken()
}

// PrivateToken returns the configured private token, or "" when none is
// set.
func (c *Client) PrivateToken() string {
	if c.privateToken == nil {
		return ""
	}
	return c.privateToken()
}

// SudoUser returns the impersonation user, or "" when none is set.
func (c *Client) SudoUser() string {
	return c.sudo
}

// Sudo returns a new client sharing this client's configuration with the
// impersonation user replaced. The receiver is not modified. Subsequent
// calls on the returned client carry a SUDO header attributing them to
// the given user.
func (c *Client) Sudo(user string) *Client {
	clone := &Client{
		rest:         c.rest,
		baseURL:      c.baseURL,
		logger:       c.logger,
		oauthToken:   c.oauthToken,
		privateToken: c.privateToken,
		sudo:         user,
	}
	return clone
}

// authHeaders assembles the per-call authorization header set from the
// current configuration. All three headers are independent and combine.
func (c *Client) authHeaders() http.Header {
	h := http.Header{}
	if c.oauthToken != nil {
		h.Set("Authorization", "Bearer "+c.oauthToken())
	}
	if c.privateToken != nil {
		h.Set("PRIVATE-TOKEN", c.privateToken())
	}
	if c.sudo != "" {
		h.Set("SUDO", c.sudo)
	}
	return h
}

// endpoint describes one logical API operation: verb, path template with
// :name placeholders, and whether the response body is decoded. The
// parameter channel is derived from the verb: query string for GET, HEAD
// and OPTIONS, request body for everything else.
type endpoint struct {
	method string
	path   string
	raw    bool // skip structured decoding; caller wants the bytes
}

// call dispatches one endpoint invocation: resolves the path template
// against the positional values, encodes params into the verb's channel,
// attaches auth headers and executes through the transport. Argument
// errors surface before any network activity.
func (c *Client) call(ctx context.Context, ep endpoint, result any, params any, pathVars ...any) (*rest.Response, error) {
	path, err := rest.ResolvePath(ep.path, pathVars...)
	if err != nil {
		return nil, wrapError(err)
	}

	opts := &rest.CallOptions{
		Headers: c.authHeaders(),
		Decode:  !ep.raw && result != nil,
		Result:  result,
	}

	if !isNil(params) {
		switch ep.method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			q, err := query.Values(params)
			if err != nil {
				return nil, err
			}
			opts.Query = q
		default:
			opts.Body = params
		}
	}

	resp, err := c.rest.Do(ctx, ep.method, path, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// isNil reports whether params is nil, including a typed nil pointer
// passed through an interface. Nil option structs contribute nothing to
// either channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
