package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(
		WithBaseURL(server.URL),
		WithPrivateToken("abc123"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return server, client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(WithPrivateToken("abc123"))
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Errorf("New() error = %v, want ErrMissingBaseURL", err)
	}
}

func TestNew_WorksWithoutCredentials(t *testing.T) {
	client, err := New(WithBaseURL("https://gitlab.example.com/api/v4"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.PrivateToken() != "" || client.OAuthToken() != "" {
		t.Error("unconfigured tokens should be empty")
	}
}

func TestClient_TokenNotLeakedByDump(t *testing.T) {
	client, err := New(
		WithBaseURL("https://gitlab.example.com/api/v4"),
		WithPrivateToken("abc123"),
		WithOAuthToken("xyz789"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, dump := range []string{
		fmt.Sprintf("%v", client),
		fmt.Sprintf("%+v", client),
		fmt.Sprintf("%#v", *client),
	} {
		if strings.Contains(dump, "abc123") || strings.Contains(dump, "xyz789") {
			t.Errorf("client dump leaks token: %s", dump)
		}
	}

	// The designated accessors remain the one way in.
	if client.PrivateToken() != "abc123" {
		t.Errorf("PrivateToken() = %s, want abc123", client.PrivateToken())
	}
	if client.OAuthToken() != "xyz789" {
		t.Errorf("OAuthToken() = %s, want xyz789", client.OAuthToken())
	}
}

func TestClient_AuthHeaders(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want map[string]string
	}{
		{
			name: "private token",
			opts: []Option{WithPrivateToken("abc123")},
			want: map[string]string{"PRIVATE-TOKEN": "abc123"},
		},
		{
			name: "oauth token",
			opts: []Option{WithOAuthToken("xyz789")},
			want: map[string]string{"Authorization": "Bearer xyz789"},
		},
		{
			name: "both tokens combine, no mutual exclusion",
			opts: []Option{WithPrivateToken("abc123"), WithOAuthToken("xyz789")},
			want: map[string]string{
				"PRIVATE-TOKEN": "abc123",
				"Authorization": "Bearer xyz789",
			},
		},
		{
			name: "sudo user",
			opts: []Option{WithPrivateToken("abc123"), WithSudo("alice")},
			want: map[string]string{
				"PRIVATE-TOKEN": "abc123",
				"SUDO":          "alice",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]Option{WithBaseURL("https://gitlab.example.com/api/v4")}, tc.opts...)
			client, err := New(opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			headers := client.authHeaders()
			for key, want := range tc.want {
				if got := headers.Get(key); got != want {
					t.Errorf("header %s = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestClient_Sudo(t *testing.T) {
	client, err := New(
		WithBaseURL("https://gitlab.example.com/api/v4"),
		WithPrivateToken("abc123"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sudoed := client.Sudo("alice")

	if sudoed.SudoUser() != "alice" {
		t.Errorf("SudoUser() = %s, want alice", sudoed.SudoUser())
	}
	if client.SudoUser() != "" {
		t.Error("Sudo() mutated the original client")
	}
	if sudoed.PrivateToken() != "abc123" {
		t.Error("Sudo() lost the credential")
	}
	if got := sudoed.authHeaders().Get("SUDO"); got != "alice" {
		t.Errorf("SUDO header = %s, want alice", got)
	}
}

func TestGetProject_SendsTokenAndPath(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		// "group/repo" must arrive as one escaped path segment.
		if r.URL.EscapedPath() != "/projects/group%2Frepo" {
			t.Errorf("path = %s, want /projects/group%%2Frepo", r.URL.EscapedPath())
		}
		if r.Header.Get("PRIVATE-TOKEN") != "abc123" {
			t.Errorf("PRIVATE-TOKEN = %s, want abc123", r.Header.Get("PRIVATE-TOKEN"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":42,"name":"widget"}`)
	})

	project, err := client.GetProject(context.Background(), "group/repo", nil)
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if project.ID != 42 || project.Name != "widget" {
		t.Errorf("project = %+v, want id 42 name widget", project)
	}
}

func TestGetProject_404ReturnsNilNil(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"404 Project Not Found"}`)
	})

	project, err := client.GetProject(context.Background(), 42, nil)
	if err != nil {
		t.Fatalf("GetProject() error = %v, want nil for GET 404", err)
	}
	if project != nil {
		t.Errorf("project = %+v, want nil", project)
	}
}

func TestDeleteProject_404IsError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"404 Project Not Found"}`)
	})

	err := client.DeleteProject(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteProject() error = %v, want ErrNotFound", err)
	}
}

func TestCreateIssue_FailureMessage(t *testing.T) {
	server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"name already taken"}`)
	})

	_, err := client.CreateIssue(context.Background(), 7, &CreateIssueOptions{
		Title: Ptr("x"),
	})
	if err == nil {
		t.Fatal("CreateIssue() should fail for 422")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	msg := err.Error()
	for _, want := range []string{"POST", "/projects/7/issues", server.URL, "422", "name already taken"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not contain %q", msg, want)
		}
	}
}

func TestCall_ArgumentErrorBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	// Structured value where a scalar path component is required.
	_, err := client.GetProject(context.Background(), map[string]int{"id": 42}, nil)
	if !errors.Is(err, ErrInvalidPathArg) {
		t.Errorf("error = %v, want ErrInvalidPathArg", err)
	}

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error type = %T, want *ArgumentError", err)
	}
	if argErr.Position != 1 || argErr.Placeholder != "id" {
		t.Errorf("ArgumentError = %+v, want position 1 placeholder id", argErr)
	}
	if calls.Load() != 0 {
		t.Errorf("server saw %d calls, want 0", calls.Load())
	}
}

func TestListProjects_QueryEncoding(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("membership") != "true" {
			t.Errorf("membership = %s, want true", q.Get("membership"))
		}
		if q.Get("search") != "widget" {
			t.Errorf("search = %s, want widget", q.Get("search"))
		}
		if q.Get("page") != "2" || q.Get("per_page") != "50" {
			t.Errorf("pagination = %s/%s, want 2/50", q.Get("page"), q.Get("per_page"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1}]`)
	})

	projects, err := client.ListProjects(context.Background(), &ListProjectsOptions{
		ListOptions: ListOptions{Page: 2, PerPage: 50},
		Membership:  Ptr(true),
		Search:      Ptr("widget"),
	})
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 1 || projects[0].ID != 1 {
		t.Errorf("projects = %+v, want one project with id 1", projects)
	}
}

func TestRawFile_OctetStreamPassthrough(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/projects/7/repository/files/a%2Fb.txt/raw" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		fmt.Fprint(w, "hello")
	})

	content, err := client.RawFile(context.Background(), 7, "a/b.txt", &GetFileOptions{Ref: Ptr("main")})
	if err != nil {
		t.Fatalf("RawFile() error = %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("content = %q, want %q", content, "hello")
	}
}

func TestFileExists(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		if strings.Contains(r.URL.EscapedPath(), "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	exists, err := client.FileExists(context.Background(), 7, "README.md", nil)
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if !exists {
		t.Error("FileExists() = false, want true")
	}

	exists, err = client.FileExists(context.Background(), 7, "missing.md", nil)
	if err != nil {
		t.Fatalf("FileExists() error = %v", err)
	}
	if exists {
		t.Error("FileExists() = true, want false")
	}
}

func TestJobTrace_RawText(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "$ make test\nok\n")
	})

	trace, err := client.JobTrace(context.Background(), 7, 99)
	if err != nil {
		t.Fatalf("JobTrace() error = %v", err)
	}
	if string(trace) != "$ make test\nok\n" {
		t.Errorf("trace = %q", trace)
	}
}

func TestSudoHeaderReachesServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("SUDO"); got != "alice" {
			t.Errorf("SUDO = %s, want alice", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"username":"alice"}`)
	}))
	defer server.Close()

	client, err := New(WithBaseURL(server.URL), WithPrivateToken("abc123"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	user, err := client.Sudo("alice").CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %s, want alice", user.Username)
	}
}
