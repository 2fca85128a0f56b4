package gitlab

import (
	"context"
	"net/http"
)

// Branch represents a repository branch.
type Branch struct {
	Name               string  `json:"name"`
	Merged             bool    `json:"merged"`
	Protected          bool    `json:"protected"`
	Default            bool    `json:"default"`
	DevelopersCanPush  bool    `json:"developers_can_push"`
	DevelopersCanMerge bool    `json:"developers_can_merge"`
	Commit             *Commit `json:"commit"`
}

// ListBranchesOptions are the parameters for ListBranches.
type ListBranchesOptions struct {
	ListOptions
	Search *string `url:"search,omitempty" json:"search,omitempty"`
}

// CreateBranchOptions are the parameters for CreateBranch.
type CreateBranchOptions struct {
	Branch *string `url:"branch,omitempty" json:"branch,omitempty"`
	Ref    *string `url:"ref,omitempty" json:"ref,omitempty"`
}

// ProtectBranchOptions are the parameters for ProtectBranch.
type ProtectBranchOptions struct {
	DevelopersCanPush  *bool `url:"developers_can_push,omitempty" json:"developers_can_push,omitempty"`
	DevelopersCanMerge *bool `url:"developers_can_merge,omitempty" json:"developers_can_merge,omitempty"`
}

// GetBranch returns a single branch, or (nil, nil) when it does not
// exist.
func (c *Client) GetBranch(ctx context.Context, projectID any, branch string) (*Branch, error) {
	var b Branch
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/branches/:branch"}, &b, nil, projectID, branch)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &b, nil
}

// ListBranches returns a page of the repository's branches.
func (c *Client) ListBranches(ctx context.Context, projectID any, opt *ListBranchesOptions) ([]*Branch, error) {
	var branches []*Branch
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/branches"}, &branches, opt, projectID); err != nil {
		return nil, err
	}
	return branches, nil
}

// CreateBranch creates a new branch from the given ref.
func (c *Client) CreateBranch(ctx context.Context, projectID any, opt *CreateBranchOptions) (*Branch, error) {
	var b Branch
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/repository/branches"}, &b, opt, projectID); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBranch deletes a branch.
func (c *Client) DeleteBranch(ctx context.Context, projectID any, branch string) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "projects/:id/repository/branches/:branch"}, nil, nil, projectID, branch)
	return err
}

// ProtectBranch protects a branch.
func (c *Client) ProtectBranch(ctx context.Context, projectID any, branch string, opt *ProtectBranchOptions) (*Branch, error) {
	var b Branch
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id/repository/branches/:branch/protect"}, &b, opt, projectID, branch); err != nil {
		return nil, err
	}
	return &b, nil
}

// UnprotectBranch removes protection from a branch.
func (c *Client) UnprotectBranch(ctx context.Context, projectID any, branch string) (*Branch, error) {
	var b Branch
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id/repository/branches/:branch/unprotect"}, &b, nil, projectID, branch); err != nil {
		return nil, err
	}
	return &b, nil
}
