package gitlab

import (
	"context"
	"errors"
	"net/http"
)

// File represents a repository file, base64-encoded by the API.
type File struct {
	FileName      string `json:"file_name"`
	FilePath      string `json:"file_path"`
	Size          int    `json:"size"`
	Encoding      string `json:"encoding"`
	Content       string `json:"content"`
	ContentSHA256 string `json:"content_sha256"`
	Ref           string `json:"ref"`
	BlobID        string `json:"blob_id"`
	CommitID      string `json:"commit_id"`
	LastCommitID  string `json:"last_commit_id"`
}

// FileInfo is returned by the write operations on repository files.
type FileInfo struct {
	FilePath string `json:"file_path"`
	Branch   string `json:"branch"`
}

// GetFileOptions are the parameters for GetFile and RawFile.
type GetFileOptions struct {
	Ref *string `url:"ref,omitempty" json:"ref,omitempty"`
}

// FileContentOptions are the parameters for CreateFile, UpdateFile and
// DeleteFile.
type FileContentOptions struct {
	Branch        *string `url:"branch,omitempty" json:"branch,omitempty"`
	Content       *string `url:"content,omitempty" json:"content,omitempty"`
	CommitMessage *string `url:"commit_message,omitempty" json:"commit_message,omitempty"`
	Encoding      *string `url:"encoding,omitempty" json:"encoding,omitempty"`
	AuthorName    *string `url:"author_name,omitempty" json:"author_name,omitempty"`
	AuthorEmail   *string `url:"author_email,omitempty" json:"author_email,omitempty"`
	LastCommitID  *string `url:"last_commit_id,omitempty" json:"last_commit_id,omitempty"`
}

// ArchiveOptions are the parameters for Archive.
type ArchiveOptions struct {
	SHA  *string `url:"sha,omitempty" json:"sha,omitempty"`
	Path *string `url:"path,omitempty" json:"path,omitempty"`
}

// GetFile returns a file's metadata and base64 content, or (nil, nil)
// when it does not exist at the given ref.
func (c *Client) GetFile(ctx context.Context, projectID any, filePath string, opt *GetFileOptions) (*File, error) {
	var f File
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/files/:file_path"}, &f, opt, projectID, filePath)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &f, nil
}

// FileExists reports whether a file exists at the given ref, using a
// HEAD request. HEAD has no 404 exemption, so absence arrives as an
// error and is translated here.
func (c *Client) FileExists(ctx context.Context, projectID any, filePath string, opt *GetFileOptions) (bool, error) {
	_, err := c.call(ctx, endpoint{method: http.MethodHead, path: "projects/:id/repository/files/:file_path"}, nil, opt, projectID, filePath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RawFile returns the file's content bytes, exactly as stored. The
// server responds with a non-structured content type, so the body is
// never run through the JSON decoder. Returns (nil, nil) when the file
// does not exist at the given ref.
func (c *Client) RawFile(ctx context.Context, projectID any, filePath string, opt *GetFileOptions) ([]byte, error) {
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/files/:file_path/raw", raw: true}, nil, opt, projectID, filePath)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return resp.Raw, nil
}

// Archive returns the repository archive as raw bytes (a tarball by
// default). Returns (nil, nil) when the project or ref does not exist.
func (c *Client) Archive(ctx context.Context, projectID any, opt *ArchiveOptions) ([]byte, error) {
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "projects/:id/repository/archive", raw: true}, nil, opt, projectID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return resp.Raw, nil
}

// CreateFile creates a new file on the given branch.
func (c *Client) CreateFile(ctx context.Context, projectID any, filePath string, opt *FileContentOptions) (*FileInfo, error) {
	var info FileInfo
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "projects/:id/repository/files/:file_path"}, &info, opt, projectID, filePath); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateFile replaces a file's content on the given branch.
func (c *Client) UpdateFile(ctx context.Context, projectID any, filePath string, opt *FileContentOptions) (*FileInfo, error) {
	var info FileInfo
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "projects/:id/repository/files/:file_path"}, &info, opt, projectID, filePath); err != nil {
		return nil, err
	}
	return &info, nil
}

// DeleteFile removes a file on the given branch.
func (c *Client) DeleteFile(ctx context.Context, projectID any, filePath string, opt *FileContentOptions) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "projects/:id/repository/files/:file_path"}, nil, opt, projectID, filePath)
	return err
}
