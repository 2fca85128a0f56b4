package rest

import (
	"strings"
	"testing"
)

func TestNewError_UppercasesVerb(t *testing.T) {
	err := newError("post", "/things", "https://git.example.com/api/v4", 422, nil)
	if err.Verb != "POST" {
		t.Errorf("Verb = %s, want POST", err.Verb)
	}
}

func TestServerErrorText(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"name already taken"}`, "name already taken"},
		{"error field", `{"error":"invalid_grant"}`, "invalid_grant"},
		{"message preferred over error", `{"message":"m","error":"e"}`, "m"},
		{"structured message", `{"message":{"name":["has already been taken"]}}`, `{"name":["has already been taken"]}`},
		{"no recognized field", `{"detail":"nope"}`, "<undef>"},
		{"not json", `gateway exploded`, "<undef>"},
		{"empty", ``, "<undef>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := serverErrorText([]byte(tc.body)); got != tc.want {
				t.Errorf("serverErrorText(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestOneLineBody(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", "<undef>"},
		{"whitespace only", " \n\t ", "<undef>"},
		{"text collapsed", "line one\n   line\ttwo", "line one line two"},
		{"json compacted", "{\n  \"a\": 1,\n  \"b\": [1, 2]\n}", `{"a":1,"b":[1,2]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := oneLineBody([]byte(tc.body)); got != tc.want {
				t.Errorf("oneLineBody(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestError_MessageContainsAllFields(t *testing.T) {
	err := newError("PUT", "/projects/1", "https://git.example.com/api/v4", 409,
		[]byte(`{"message":"conflict"}`))

	msg := err.Error()
	for _, want := range []string{"PUT", "/projects/1", "https://git.example.com/api/v4", "409", "conflict"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not contain %q", msg, want)
		}
	}
}
