package gitlab

import (
	"context"
	"net/http"
	"time"
)

// MergeRequest represents a project merge request.
type MergeRequest struct {
	ID           int        `json:"id"`
	IID          int        `json:"iid"`
	ProjectID    int        `json:"project_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	State        string     `json:"state"`
	SourceBranch string     `json:"source_branch"`
	TargetBranch string     `json:"target_branch"`
	Author       *User      `json:"author"`
	MergeStatus  string     `json:"merge_status"`
	SHA          string     `json:"sha"`
	WebURL       string     `json:"web_url"`
	CreatedAt    *time.Time `json:"created_at"`
	MergedAt     *time.Time `json:"merged_at"`
}

// ListProjectMergeRequestsOptions are the parameters for
// ListProjectMergeRequests.
type ListProjectMergeRequestsOptions struct {
	ListOptions
	State        *string `url:"state,omitempty" json:"state,omitempty"`
	SourceBranch *string `url:"source_branch,omitempty" json:"source_branch,omitempty"`
	TargetBranch *string `url:"target_branch,omitempty" json:"target_branch,omitempty"`
	Search       *string `url:"search,omitempty" json:"search,omitempty"`
}

// CreateMergeRequestOptions are the parameters for CreateMergeRequest.
type CreateMergeRequestOptions struct {
	Title              *string `url:"title,omitempty" json:"title,omitempty"`
	Description        *string `url:"description,omitempty" json:"description,omitempty"`
	SourceBranch       *string `url:"source_branch,omitempty" json:"source_branch,omitempty"`
	TargetBranch       *string `url:"target_branch,omitempty" json:"target_branch,omitempty"`
	AssigneeID         *int    `url:"assignee_id,omitempty" json:"assignee_id,omitempty"`
	RemoveSourceBranch *bool   `url:"remove_source_branch,omitempty" json:"remove_source_branch,omitempty"`
}

// AcceptMergeRequestOptions are the parameters for AcceptMergeRequest.
type AcceptMergeRequestOptions struct {
	MergeCommitMessage        *string `url:"merge_commit_message,omitempty" json:"merge_commit_message,omitempty"`
	Squash                    *bool   `url:"squash,omitempty" json:"squash,omitempty"`
	ShouldRemoveSourceBranch  *bool   `url:"should_remove_source_branch,omitempty" json:"should_remove_source_branch,omitempty"`
	MergeWhenPipelineSucceeds *bool   `url:"merge_when_pipeline_succeeds,omitempty" json:"merge_when_pipeline_succeeds,omitempty"`
}

// GetMergeRequest returns a single merge request by its project-local
// IID, or (nil, nil) when it does not exist.
func (c *Client) GetMergeRequest(ctx context.Context, projectID any, mrIID int) (*MergeRequest, error) {
	var mr MergeRequest
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/merge_requests/:merge_request_iid"}, &mr, nil, projectID, mrIID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &mr, nil
}

// ListProjectMergeRequests returns a page of the project's merge requests.
func (c *Client) ListProjectMergeRequests(ctx context.Context, projectID any, opt *ListProjectMergeRequestsOptions) ([]*MergeRequest, error) {
	var mrs []*MergeRequest
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/merge_requests"}, &mrs, opt, projectID); err != nil {
		return nil, err
	}
	return mrs, nil
}

// CreateMergeRequest creates a new merge request.
func (c *Client) CreateMergeRequest(ctx context.Context, projectID any, opt *CreateMergeRequestOptions) (*MergeRequest, error) {
	var mr MergeRequest
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/merge_requests"}, &mr, opt, projectID); err != nil {
		return nil, err
	}
	return &mr, nil
}

// AcceptMergeRequest merges the merge request. The server responds 405
// or 406 when it is not in a mergeable state; that surfaces as an
// *APIError carrying the server's explanation.
func (c *Client) AcceptMergeRequest(ctx context.Context, projectID any, mrIID int, opt *AcceptMergeRequestOptions) (*MergeRequest, error) {
	var mr MergeRequest
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id/merge_requests/:merge_request_iid/merge"}, &mr, opt, projectID, mrIID); err != nil {
		return nil, err
	}
	return &mr, nil
}

// DeleteMergeRequest deletes a merge request.
func (c *Client) DeleteMergeRequest(ctx context.Context, projectID any, mrIID int) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "projects/:id/merge_requests/:merge_request_iid"}, nil, nil, projectID, mrIID)
	return err
}
