package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Issue represents a project issue.
type Issue struct {
	ID          int        `json:"id"`
	IID         int        `json:"iid"`
	ProjectID   int        `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Labels      []string   `json:"labels"`
	Author      *User      `json:"author"`
	Assignee    *User      `json:"assignee"`
	WebURL      string     `json:"web_url"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// ListProjectIssuesOptions are the parameters for ListProjectIssues.
type ListProjectIssuesOptions struct {
	ListOptions
	State   *string `url:"state,omitempty" json:"state,omitempty"`
	Labels  *string `url:"labels,omitempty" json:"labels,omitempty"`
	Search  *string `url:"search,omitempty" json:"search,omitempty"`
	OrderBy *string `url:"order_by,omitempty" json:"order_by,omitempty"`
	Sort    *string `url:"sort,omitempty" json:"sort,omitempty"`
}

// CreateIssueOptions are the parameters for CreateIssue.
type CreateIssueOptions struct {
	Title        *string `url:"title,omitempty" json:"title,omitempty"`
	Description  *string `url:"description,omitempty" json:"description,omitempty"`
	Labels       *string `url:"labels,omitempty" json:"labels,omitempty"`
	AssigneeID   *int    `url:"assignee_id,omitempty" json:"assignee_id,omitempty"`
	Confidential *bool   `url:"confidential,omitempty" json:"confidential,omitempty"`
}

// EditIssueOptions are the parameters for EditIssue.
type EditIssueOptions struct {
	Title       *string `url:"title,omitempty" json:"title,omitempty"`
	Description *string `url:"description,omitempty" json:"description,omitempty"`
	Labels      *string `url:"labels,omitempty" json:"labels,omitempty"`
	AssigneeID  *int    `url:"assignee_id,omitempty" json:"assignee_id,omitempty"`
	StateEvent  *string `url:"state_event,omitempty" json:"state_event,omitempty"`
}

// GetIssue returns a single project issue by its project-local IID, or
// (nil, nil) when it does not exist.
func (c *Client) GetIssue(ctx context.Context, projectID any, issueIID int) (*Issue, error) {
	var issue Issue
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/issues/:issue_iid"}, &issue, nil, projectID, issueIID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &issue, nil
}

// ListProjectIssues returns a page of the project's issues.
func (c *Client) ListProjectIssues(ctx context.Context, projectID any, opt *ListProjectIssuesOptions) ([]*Issue, error) {
	var issues []*Issue
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/issues"}, &issues, opt, projectID); err != nil {
		return nil, err
	}
	return issues, nil
}

// CreateIssue creates a new project issue.
func (c *Client) CreateIssue(ctx context.Context, projectID any, opt *CreateIssueOptions) (*Issue, error) {
	var issue Issue
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/issues"}, &issue, opt, projectID); err != nil {
		return nil, err
	}
	return &issue, nil
}

// EditIssue updates an existing issue; use StateEvent "close" or
// "reopen" to change its state.
func (c *Client) EditIssue(ctx context.Context, projectID any, issueIID int, opt *EditIssueOptions) (*Issue, error) {
	var issue Issue
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id/issues/:issue_iid"}, &issue, opt, projectID, issueIID); err != nil {
		return nil, err
	}
	return &issue, nil
}

// DeleteIssue deletes an issue.
func (c *Client) DeleteIssue(ctx context.Context, projectID any, issueIID int) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "projects/:id/issues/:issue_iid"}, nil, nil, projectID, issueIID)
	return err
}
