package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Pipeline represents a CI pipeline.
type Pipeline struct {
	ID        int        `json:"id"`
	ProjectID int        `json:"project_id"`
	Status    string     `json:"status"`
	Ref       string     `json:"ref"`
	SHA       string     `json:"sha"`
	Source    string     `json:"source"`
	WebURL    string     `json:"web_url"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Job represents one job within a pipeline.
type Job struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Stage        string     `json:"stage"`
	Status       string     `json:"status"`
	Ref          string     `json:"ref"`
	AllowFailure bool       `json:"allow_failure"`
	WebURL       string     `json:"web_url"`
	Pipeline     *Pipeline  `json:"pipeline"`
	CreatedAt    *time.Time `json:"created_at"`
	StartedAt    *time.Time `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"`
}

// ListPipelinesOptions are the parameters for ListPipelines.
type ListPipelinesOptions struct {
	ListOptions
	Status  *string `url:"status,omitempty" json:"status,omitempty"`
	Ref     *string `url:"ref,omitempty" json:"ref,omitempty"`
	SHA     *string `url:"sha,omitempty" json:"sha,omitempty"`
	OrderBy *string `url:"order_by,omitempty" json:"order_by,omitempty"`
	Sort    *string `url:"sort,omitempty" json:"sort,omitempty"`
}

// CreatePipelineOptions are the parameters for CreatePipeline.
type CreatePipelineOptions struct {
	Ref *string `url:"ref,omitempty" json:"ref,omitempty"`
}

// ListPipelineJobsOptions are the parameters for ListPipelineJobs.
type ListPipelineJobsOptions struct {
	ListOptions
	Scope *string `url:"scope,omitempty" json:"scope,omitempty"`
}

// GetPipeline returns a single pipeline, or (nil, nil) when it does not
// exist.
func (c *Client) GetPipeline(ctx context.Context, projectID any, pipelineID int) (*Pipeline, error) {
	var p Pipeline
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/pipelines/:pipeline_id"}, &p, nil, projectID, pipelineID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &p, nil
}

// ListPipelines returns a page of the project's pipelines.
func (c *Client) ListPipelines(ctx context.Context, projectID any, opt *ListPipelinesOptions) ([]*Pipeline, error) {
	var pipelines []*Pipeline
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/pipelines"}, &pipelines, opt, projectID); err != nil {
		return nil, err
	}
	return pipelines, nil
}

// CreatePipeline triggers a new pipeline for the given ref.
func (c *Client) CreatePipeline(ctx context.Context, projectID any, opt *CreatePipelineOptions) (*Pipeline, error) {
	var p Pipeline
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/pipeline"}, &p, opt, projectID); err != nil {
		return nil, err
	}
	return &p, nil
}

// RetryPipeline retries the failed jobs of a pipeline.
func (c *Client) RetryPipeline(ctx context.Context, projectID any, pipelineID int) (*Pipeline, error) {
	var p Pipeline
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/pipelines/:pipeline_id/retry"}, &p, nil, projectID, pipelineID); err != nil {
		return nil, err
	}
	return &p, nil
}

// CancelPipeline cancels a running pipeline.
func (c *Client) CancelPipeline(ctx context.Context, projectID any, pipelineID int) (*Pipeline, error) {
	var p Pipeline
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/pipelines/:pipeline_id/cancel"}, &p, nil, projectID, pipelineID); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetJob returns a single job, or (nil, nil) when it does not exist.
func (c *Client) GetJob(ctx context.Context, projectID any, jobID int) (*Job, error) {
	var j Job
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/jobs/:job_id"}, &j, nil, projectID, jobID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &j, nil
}

// ListPipelineJobs returns a page of the pipeline's jobs.
func (c *Client) ListPipelineJobs(ctx context.Context, projectID any, pipelineID int, opt *ListPipelineJobsOptions) ([]*Job, error) {
	var jobs []*Job
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/pipelines/:pipeline_id/jobs"}, &jobs, opt, projectID, pipelineID); err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobTrace returns the job's log as raw bytes. The trace is plain text;
// it is never run through the JSON decoder. Returns (nil, nil) when the
// job does not exist.
func (c *Client) JobTrace(ctx context.Context, projectID any, jobID int) ([]byte, error) {
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/jobs/:job_id/trace", raw: true}, nil, nil, projectID, jobID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return resp.Raw, nil
}

// RetryJob retries a single job.
func (c *Client) RetryJob(ctx context.Context, projectID any, jobID int) (*Job, error) {
	var j Job
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/jobs/:job_id/retry"}, &j, nil, projectID, jobID); err != nil {
		return nil, err
	}
	return &j, nil
}
