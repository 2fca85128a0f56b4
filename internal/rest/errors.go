package rest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// undefMarker stands in for a missing server error text or an empty
// response body in diagnostic messages.
const undefMarker = "<undef>"

// Error represents a failed HTTP call. It carries everything needed to
// reproduce the request: verb, path, base URL, status, the server's error
// text and a one-line dump of the response body.
type Error struct {
	Verb    string
	Path    string
	BaseURL string
	Status  int
	Message string
	Body    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s on %s failed: HTTP %d: %s: %s",
		e.Verb, e.Path, e.BaseURL, e.Status, e.Message, e.Body)
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// newError builds an *Error from a failed response. The verb is
// upper-cased, the server error text is extracted from the usual GitLab
// fields ("message" or "error"), and the body is flattened to one line.
func newError(verb, path, baseURL string, status int, body []byte) *Error {
	return &Error{
		Verb:    strings.ToUpper(verb),
		Path:    path,
		BaseURL: baseURL,
		Status:  status,
		Message: serverErrorText(body),
		Body:    oneLineBody(body),
	}
}

// serverErrorText pulls the server-supplied error text out of a JSON
// error body. GitLab uses "message" for most errors and "error" for
// OAuth-style ones; either may be a string or a structured value.
func serverErrorText(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
			if len(raw) == 0 {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
			return compactJSON(raw)
		}
	}
	return undefMarker
}

// oneLineBody renders the response body as a single diagnostic line:
// structured values as compact JSON, text with whitespace collapsed, and
// an explicit marker when the body is empty.
func oneLineBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return undefMarker
	}
	if json.Valid(body) {
		return compactJSON(body)
	}
	return strings.Join(strings.Fields(trimmed), " ")
}

func compactJSON(raw []byte) string {
	var buf strings.Builder
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return strings.Join(strings.Fields(string(raw)), " ")
	}
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return strings.Join(strings.Fields(string(raw)), " ")
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
