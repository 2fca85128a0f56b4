package gitlab

import (
	"errors"
	"fmt"

	"github.com/gitlabapi/client-go/internal/rest"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is configured.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrUnauthorized is returned when the credential is invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the credential lacks access to the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a non-GET call hits a missing resource.
	// A GET receiving 404 never errors; it returns the absent value.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidPathArg is returned for a path-variable precondition
	// violation: wrong count or a structured value where a scalar path
	// component is required. Raised before any network activity.
	ErrInvalidPathArg = errors.New("invalid path argument")
)

// APIError represents a failed HTTP call against the GitLab API. Its
// message carries the verb, path, base URL, status code, server error
// text and a one-line dump of the response body.
type APIError struct {
	Verb       string
	Path       string
	BaseURL    string
	StatusCode int
	Message    string // server-supplied error text, or "<undef>"
	Body       string // one-line response body dump
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s on %s failed: HTTP %d: %s: %s",
		e.Verb, e.Path, e.BaseURL, e.StatusCode, e.Message, e.Body)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// ArgumentError reports a local precondition violation on a call's
// positional path variables. No network call was attempted.
type ArgumentError struct {
	Template    string
	Position    int
	Placeholder string
	Reason      string
}

func (e *ArgumentError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("invalid path argument %d (:%s) for %q: %s",
			e.Position, e.Placeholder, e.Template, e.Reason)
	}
	return fmt.Sprintf("invalid path arguments for %q: %s", e.Template, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidPathArg
}

// NetworkError represents a connection-level failure, before any HTTP
// status was received.
type NetworkError struct {
	Verb string
	URL  string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Verb, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal transport errors to public errors so that
// errors.Is() checks work with the package's sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *rest.Error
	if errors.As(err, &restErr) {
		return &APIError{
			Verb:       restErr.Verb,
			Path:       restErr.Path,
			BaseURL:    restErr.BaseURL,
			StatusCode: restErr.Status,
			Message:    restErr.Message,
			Body:       restErr.Body,
		}
	}

	var argErr *rest.ArgumentError
	if errors.As(err, &argErr) {
		return &ArgumentError{
			Template:    argErr.Template,
			Position:    argErr.Position,
			Placeholder: argErr.Placeholder,
			Reason:      argErr.Reason,
		}
	}

	var netErr *rest.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Verb: netErr.Verb,
			URL:  netErr.URL,
			Err:  netErr.Err,
		}
	}

	return err
}
