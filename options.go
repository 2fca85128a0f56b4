package gitlab

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// clientConfig holds construction-time configuration. Token fields are
// transient: New captures them into closures and blanks the copies it
// retains.
type clientConfig struct {
	baseURL      string
	oauthToken   string
	privateToken string
	sudo         string
	retries      int
	timeout      time.Duration
	httpClient   *http.Client
	logger       hclog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API root, e.g. "https://gitlab.example.com/api/v4".
// Required.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithOAuthToken sets an OAuth 2 access token, sent as
// "Authorization: Bearer <token>". May be combined with a private token;
// the client does not enforce mutual exclusion.
func WithOAuthToken(token string) Option {
	return func(c *clientConfig) {
		c.oauthToken = token
	}
}

// WithPrivateToken sets a personal access token, sent as the
// PRIVATE-TOKEN header.
func WithPrivateToken(token string) Option {
	return func(c *clientConfig) {
		c.privateToken = token
	}
}

// WithSudo sets the impersonation user attached to every call via the
// SUDO header. See also Client.Sudo for deriving an impersonating client
// from an existing one.
func WithSudo(user string) Option {
	return func(c *clientConfig) {
		c.sudo = user
	}
}

// WithRetries sets the number of retries performed by the underlying
// HTTP client for 429/5xx responses and connection errors. Default: 0
// (no retries).
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithTimeout sets the per-attempt HTTP timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. When set, WithRetries and
// WithTimeout have no effect; retry behavior belongs to the supplied
// client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for request/response debug lines. It is also
// handed to the retrying HTTP client. Default: no logging.
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
