package rest

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
)

// Retry backoff bounds for the underlying client.
const (
	retryWaitMin = 500 * time.Millisecond
	retryWaitMax = 15 * time.Second
)

// newHTTPClient builds the HTTP client the transport runs on. With
// maxRetries > 0 it is a retryablehttp standard client, which retries
// 429/5xx responses and connection errors with exponential backoff and
// honors Retry-After. With maxRetries == 0 it is a plain client and every
// outcome is final.
func newHTTPClient(maxRetries int, timeout time.Duration, logger hclog.Logger) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRetries <= 0 {
		return &http.Client{Timeout: timeout}
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.RetryWaitMin = retryWaitMin
	rc.RetryWaitMax = retryWaitMax
	// keep default CheckRetry (retries on 429/5xx and honors Retry-After)
	rc.Logger = logger

	httpClient := rc.StandardClient()
	httpClient.Timeout = timeout
	return httpClient
}
