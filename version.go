package gitlab

import (
	"context"
	"net/http"
)

// Version holds the server version info.
type Version struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}

// Version returns the GitLab server version. Useful as a cheap
// credential/connectivity check.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	var v Version
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "version"}, &v, nil)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &v, nil
}
