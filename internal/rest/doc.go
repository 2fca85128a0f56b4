// Package rest wraps the six HTTP verbs used by the GitLab API behind a
// single execution primitive and normalizes every outcome into one of
// three results: decoded data, an absent-value response, or an error.
//
// # The GET-404 rule
//
// A GET that receives HTTP 404 is the only verb/status pair treated as a
// non-error: it yields a [Response] with Absent set. A 404 on any other
// verb, and any other status >= 400, produces an [*Error] whose message
// includes the upper-cased verb, the path, the base URL, the status code,
// the server's error text (or "<undef>") and a one-line dump of the
// response body.
//
// # Content-type guard
//
// Structured decoding only runs when the response Content-Type contains
// one of "json", "xml", "yaml" or "x-www-form-urlencoded"
// (case-insensitive). Anything else (raw file downloads, repository
// archives, CI job traces) is exposed as raw bytes on [Response.Raw],
// even when decoding was requested.
//
// # Retries
//
// The package performs no retries itself. When a retry count is
// configured, the underlying HTTP client is a retryablehttp standard
// client that serially retries 429/5xx responses and connection errors
// with exponential backoff, bounded by that count.
package rest
