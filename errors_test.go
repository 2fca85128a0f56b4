package gitlab

import (
	"errors"
	"testing"

	"github.com/gitlabapi/client-go/internal/rest"
)

func TestAPIError_Is(t *testing.T) {
	cases := []struct {
		status int
		target error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{429, ErrRateLimited},
	}
	for _, tc := range cases {
		err := &APIError{StatusCode: tc.status}
		if !errors.Is(err, tc.target) {
			t.Errorf("status %d should match %v", tc.status, tc.target)
		}
	}

	if errors.Is(&APIError{StatusCode: 500}, ErrNotFound) {
		t.Error("500 should not match ErrNotFound")
	}
}

func TestArgumentError_Is(t *testing.T) {
	err := &ArgumentError{Template: "things/:id", Position: 1, Placeholder: "id", Reason: "not a scalar"}
	if !errors.Is(err, ErrInvalidPathArg) {
		t.Error("ArgumentError should match ErrInvalidPathArg")
	}
}

func TestWrapError(t *testing.T) {
	restErr := &rest.Error{
		Verb:    "POST",
		Path:    "/things",
		BaseURL: "https://git.example.com/api/v4",
		Status:  422,
		Message: "name already taken",
		Body:    `{"message":"name already taken"}`,
	}

	wrapped := wrapError(restErr)
	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatalf("wrapped type = %T, want *APIError", wrapped)
	}
	if apiErr.StatusCode != 422 || apiErr.Verb != "POST" || apiErr.Message != "name already taken" {
		t.Errorf("APIError = %+v", apiErr)
	}

	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should be nil")
	}

	plain := errors.New("plain")
	if wrapError(plain) != plain {
		t.Error("unknown errors should pass through unchanged")
	}
}

func TestWrapError_Network(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := wrapError(&rest.NetworkError{Verb: "GET", URL: "http://x", Err: inner})

	var netErr *NetworkError
	if !errors.As(wrapped, &netErr) {
		t.Fatalf("wrapped type = %T, want *NetworkError", wrapped)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("NetworkError should unwrap to the underlying error")
	}
}
