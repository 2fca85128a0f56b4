// Package gitlab provides a Go client for the GitLab REST API (v4).
//
// Every endpoint method validates its positional path variables locally,
// substitutes them into the endpoint's path template, and issues exactly
// one HTTP call. Read-verb parameters travel in the query string; write-
// verb parameters travel in the JSON request body.
//
// Basic usage:
//
//	client, err := gitlab.New(
//	    gitlab.WithBaseURL("https://gitlab.example.com/api/v4"),
//	    gitlab.WithPrivateToken(os.Getenv("GITLAB_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	project, err := client.GetProject(ctx, "group/repo", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if project == nil {
//	    // GET receiving 404 is "resource absent", not an error.
//	}
//
// # Results
//
// A call yields one of three outcomes: the decoded response value, a nil
// value for a GET that received HTTP 404 (the sole verb/status pair
// treated as absence rather than failure), or an error. Remote failures
// are *APIError values whose message includes the verb, path, base URL,
// status code, server error text and a one-line body dump; local
// argument violations are *ArgumentError values raised before any
// network activity. Both support errors.Is with the package sentinels.
//
// # Authentication
//
// Configure an OAuth bearer token, a private token, or both; each
// configured credential header is attached to every request, along with
// a SUDO header when an impersonation user is set. Tokens are reachable
// only through their accessor methods; dumping a Client does not print
// them.
//
// # Raw responses
//
// Endpoints that return non-structured content (raw files, archives, CI
// job traces) return the body bytes verbatim. Any response whose
// Content-Type is not a structured format is likewise never run through
// the JSON decoder.
package gitlab
