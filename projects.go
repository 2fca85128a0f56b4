package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Project represents a GitLab project.
type Project struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Path              string     `json:"path"`
	PathWithNamespace string     `json:"path_with_namespace"`
	Description       string     `json:"description"`
	DefaultBranch     string     `json:"default_branch"`
	Visibility        string     `json:"visibility"`
	Archived          bool       `json:"archived"`
	StarCount         int        `json:"star_count"`
	ForksCount        int        `json:"forks_count"`
	WebURL            string     `json:"web_url"`
	SSHURLToRepo      string     `json:"ssh_url_to_repo"`
	HTTPURLToRepo     string     `json:"http_url_to_repo"`
	CreatedAt         *time.Time `json:"created_at"`
	LastActivityAt    *time.Time `json:"last_activity_at"`
}

// GetProjectOptions are the parameters for GetProject.
type GetProjectOptions struct {
	Statistics *bool `url:"statistics,omitempty" json:"statistics,omitempty"`
	License    *bool `url:"license,omitempty" json:"license,omitempty"`
}

// ListProjectsOptions are the parameters for ListProjects.
type ListProjectsOptions struct {
	ListOptions
	Search     *string `url:"search,omitempty" json:"search,omitempty"`
	Membership *bool   `url:"membership,omitempty" json:"membership,omitempty"`
	Owned      *bool   `url:"owned,omitempty" json:"owned,omitempty"`
	Starred    *bool   `url:"starred,omitempty" json:"starred,omitempty"`
	Archived   *bool   `url:"archived,omitempty" json:"archived,omitempty"`
	Visibility *string `url:"visibility,omitempty" json:"visibility,omitempty"`
	OrderBy    *string `url:"order_by,omitempty" json:"order_by,omitempty"`
	Sort       *string `url:"sort,omitempty" json:"sort,omitempty"`
}

// CreateProjectOptions are the parameters for CreateProject.
type CreateProjectOptions struct {
	Name                 *string `url:"name,omitempty" json:"name,omitempty"`
	Path                 *string `url:"path,omitempty" json:"path,omitempty"`
	NamespaceID          *int    `url:"namespace_id,omitempty" json:"namespace_id,omitempty"`
	Description          *string `url:"description,omitempty" json:"description,omitempty"`
	Visibility           *string `url:"visibility,omitempty" json:"visibility,omitempty"`
	InitializeWithReadme *bool   `url:"initialize_with_readme,omitempty" json:"initialize_with_readme,omitempty"`
	DefaultBranch        *string `url:"default_branch,omitempty" json:"default_branch,omitempty"`
}

// EditProjectOptions are the parameters for EditProject.
type EditProjectOptions CreateProjectOptions

// GetProject returns a single project. The id may be a numeric project
// ID or a URL-encodable "group/name" path. Returns (nil, nil) when the
// project does not exist or the caller cannot see it.
func (c *Client) GetProject(ctx context.Context, id any, opt *GetProjectOptions) (*Project, error) {
	var p Project
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id"}, &p, opt, id)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &p, nil
}

// ListProjects returns a page of projects visible to the caller.
func (c *Client) ListProjects(ctx context.Context, opt *ListProjectsOptions) ([]*Project, error) {
	var projects []*Project
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects"}, &projects, opt); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a new project owned by the authenticated user.
func (c *Client) CreateProject(ctx context.Context, opt *CreateProjectOptions) (*Project, error) {
	var p Project
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects"}, &p, opt); err != nil {
		return nil, err
	}
	return &p, nil
}

// EditProject updates an existing project.
func (c *Client) EditProject(ctx context.Context, id any, opt *EditProjectOptions) (*Project, error) {
	var p Project
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id"}, &p, opt, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject schedules a project for deletion.
func (c *Client) DeleteProject(ctx context.Context, id any) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "projects/:id"}, nil, nil, id)
	return err
}

// StarProject stars a project.
func (c *Client) StarProject(ctx context.Context, id any) (*Project, error) {
	var p Project
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/star"}, &p, nil, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// UnstarProject removes a star from a project.
func (c *Client) UnstarProject(ctx context.Context, id any) (*Project, error) {
	var p Project
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/unstar"}, &p, nil, id); err != nil {
		return nil, err
	}
	return &p, nil
}
