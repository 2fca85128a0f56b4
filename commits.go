package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Commit represents a repository commit.
type Commit struct {
	ID             string     `json:"id"`
	ShortID        string     `json:"short_id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	AuthorName     string     `json:"author_name"`
	AuthorEmail    string     `json:"author_email"`
	CommitterName  string     `json:"committer_name"`
	CommitterEmail string     `json:"committer_email"`
	ParentIDs      []string   `json:"parent_ids"`
	WebURL         string     `json:"web_url"`
	AuthoredDate   *time.Time `json:"authored_date"`
	CommittedDate  *time.Time `json:"committed_date"`
}

// Diff represents one file's changes within a commit.
type Diff struct {
	OldPath     string `json:"old_path"`
	NewPath     string `json:"new_path"`
	AMode       string `json:"a_mode"`
	BMode       string `json:"b_mode"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
	Diff        string `json:"diff"`
}

// CommitAction describes one file operation within CreateCommit.
type CommitAction struct {
	Action       string `json:"action"` // create, delete, move, update, chmod
	FilePath     string `json:"file_path"`
	PreviousPath string `json:"previous_path,omitempty"`
	Content      string `json:"content,omitempty"`
	Encoding     string `json:"encoding,omitempty"`
}

// ListCommitsOptions are the parameters for ListCommits.
type ListCommitsOptions struct {
	ListOptions
	RefName *string `url:"ref_name,omitempty" json:"ref_name,omitempty"`
	Since   *string `url:"since,omitempty" json:"since,omitempty"`
	Until   *string `url:"until,omitempty" json:"until,omitempty"`
	Path    *string `url:"path,omitempty" json:"path,omitempty"`
}

// CreateCommitOptions are the parameters for CreateCommit.
type CreateCommitOptions struct {
	Branch        *string         `url:"branch,omitempty" json:"branch,omitempty"`
	CommitMessage *string         `url:"commit_message,omitempty" json:"commit_message,omitempty"`
	StartBranch   *string         `url:"start_branch,omitempty" json:"start_branch,omitempty"`
	Actions       []*CommitAction `url:"-" json:"actions,omitempty"`
	AuthorName    *string         `url:"author_name,omitempty" json:"author_name,omitempty"`
	AuthorEmail   *string         `url:"author_email,omitempty" json:"author_email,omitempty"`
}

// CherryPickCommitOptions are the parameters for CherryPickCommit.
type CherryPickCommitOptions struct {
	Branch *string `url:"branch,omitempty" json:"branch,omitempty"`
}

// GetCommit returns a single commit by SHA or ref name, or (nil, nil)
// when it does not exist.
func (c *Client) GetCommit(ctx context.Context, projectID any, sha string) (*Commit, error) {
	var commit Commit
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/commits/:sha"}, &commit, nil, projectID, sha)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &commit, nil
}

// ListCommits returns a page of the repository's commits.
func (c *Client) ListCommits(ctx context.Context, projectID any, opt *ListCommitsOptions) ([]*Commit, error) {
	var commits []*Commit
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/commits"}, &commits, opt, projectID); err != nil {
		return nil, err
	}
	return commits, nil
}

// CreateCommit creates a commit from a batch of file actions.
func (c *Client) CreateCommit(ctx context.Context, projectID any, opt *CreateCommitOptions) (*Commit, error) {
	var commit Commit
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/repository/commits"}, &commit, opt, projectID); err != nil {
		return nil, err
	}
	return &commit, nil
}

// CherryPickCommit cherry-picks a commit onto the given branch.
func (c *Client) CherryPickCommit(ctx context.Context, projectID any, sha string, opt *CherryPickCommitOptions) (*Commit, error) {
	var commit Commit
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/repository/commits/:sha/cherry_pick"}, &commit, opt, projectID, sha); err != nil {
		return nil, err
	}
	return &commit, nil
}

// GetCommitDiff returns the diff of a commit, or (nil, nil) when the
// commit does not exist.
func (c *Client) GetCommitDiff(ctx context.Context, projectID any, sha string) ([]*Diff, error) {
	var diffs []*Diff
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/commits/:sha/diff"}, &diffs, nil, projectID, sha)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return diffs, nil
}
