package gitlab

import (
	"context"
	"net/http"
)

// Group represents a GitLab group.
type Group struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	FullPath    string `json:"full_path"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
	ParentID    int    `json:"parent_id"`
	WebURL      string `json:"web_url"`
}

// ListGroupsOptions are the parameters for ListGroups.
type ListGroupsOptions struct {
	ListOptions
	Search       *string `url:"search,omitempty" json:"search,omitempty"`
	Owned        *bool   `url:"owned,omitempty" json:"owned,omitempty"`
	TopLevelOnly *bool   `url:"top_level_only,omitempty" json:"top_level_only,omitempty"`
}

// ListGroupProjectsOptions are the parameters for ListGroupProjects.
type ListGroupProjectsOptions struct {
	ListOptions
	Search           *string `url:"search,omitempty" json:"search,omitempty"`
	Archived         *bool   `url:"archived,omitempty" json:"archived,omitempty"`
	IncludeSubgroups *bool   `url:"include_subgroups,omitempty" json:"include_subgroups,omitempty"`
}

// CreateGroupOptions are the parameters for CreateGroup.
type CreateGroupOptions struct {
	Name        *string `url:"name,omitempty" json:"name,omitempty"`
	Path        *string `url:"path,omitempty" json:"path,omitempty"`
	Description *string `url:"description,omitempty" json:"description,omitempty"`
	Visibility  *string `url:"visibility,omitempty" json:"visibility,omitempty"`
	ParentID    *int    `url:"parent_id,omitempty" json:"parent_id,omitempty"`
}

// GetGroup returns a single group by ID or full path, or (nil, nil) when
// it does not exist.
func (c *Client) GetGroup(ctx context.Context, id any) (*Group, error) {
	var g Group
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "groups/:group_id"}, &g, nil, id)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &g, nil
}

// ListGroups returns a page of groups visible to the caller.
func (c *Client) ListGroups(ctx context.Context, opt *ListGroupsOptions) ([]*Group, error) {
	var groups []*Group
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "groups"}, &groups, opt); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListGroupProjects returns a page of the group's projects.
func (c *Client) ListGroupProjects(ctx context.Context, id any, opt *ListGroupProjectsOptions) ([]*Project, error) {
	var projects []*Project
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "groups/:group_id/projects"}, &projects, opt, id); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context, opt *CreateGroupOptions) (*Group, error) {
	var g Group
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "groups"}, &g, opt); err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGroup schedules a group for deletion.
func (c *Client) DeleteGroup(ctx context.Context, id any) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "groups/:group_id"}, nil, nil, id)
	return err
}
