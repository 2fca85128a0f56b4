package gitlab

import (
	"context"
	"net/http"
	"time"
)

// User represents a GitLab user account.
type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	State     string     `json:"state"`
	IsAdmin   bool       `json:"is_admin"`
	AvatarURL string     `json:"avatar_url"`
	WebURL    string     `json:"web_url"`
	CreatedAt *time.Time `json:"created_at"`
}

// ListUsersOptions are the parameters for ListUsers.
type ListUsersOptions struct {
	ListOptions
	Username *string `url:"username,omitempty" json:"username,omitempty"`
	Search   *string `url:"search,omitempty" json:"search,omitempty"`
	Active   *bool   `url:"active,omitempty" json:"active,omitempty"`
	Blocked  *bool   `url:"blocked,omitempty" json:"blocked,omitempty"`
}

// CreateUserOptions are the parameters for CreateUser.
type CreateUserOptions struct {
	Email    *string `url:"email,omitempty" json:"email,omitempty"`
	Username *string `url:"username,omitempty" json:"username,omitempty"`
	Name     *string `url:"name,omitempty" json:"name,omitempty"`
	Password *string `url:"password,omitempty" json:"password,omitempty"`
	Admin    *bool   `url:"admin,omitempty" json:"admin,omitempty"`
}

// ModifyUserOptions are the parameters for ModifyUser.
type ModifyUserOptions CreateUserOptions

// CurrentUser returns the user the configured credential belongs to.
// With an impersonation user set this is the impersonated user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "user"}, &u, nil)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &u, nil
}

// GetUser returns a single user, or (nil, nil) when no such user exists.
func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	var u User
	resp, err := c.call(ctx, endpoint{method: http.MethodGet, path: "users/:user_id"}, &u, nil, userID)
	if err != nil {
		return nil, err
	}
	if resp.Absent {
		return nil, nil
	}
	return &u, nil
}

// ListUsers returns a page of users.
func (c *Client) ListUsers(ctx context.Context, opt *ListUsersOptions) ([]*User, error) {
	var users []*User
	if _, err := c.call(ctx, endpoint{method: http.MethodGet, path: "users"}, &users, opt); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user. Requires admin privileges.
func (c *Client) CreateUser(ctx context.Context, opt *CreateUserOptions) (*User, error) {
	var u User
	if _, err := c.call(ctx, endpoint{method: http.MethodPost, path: "users"}, &u, opt); err != nil {
		return nil, err
	}
	return &u, nil
}

// ModifyUser updates an existing user. Requires admin privileges.
func (c *Client) ModifyUser(ctx context.Context, userID int, opt *ModifyUserOptions) (*User, error) {
	var u User
	if _, err := c.call(ctx, endpoint{method: http.MethodPut, path: "users/:user_id"}, &u, opt, userID); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser deletes a user. A missing user is an error here: only GET
// treats 404 as absence.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	_, err := c.call(ctx, endpoint{method: http.MethodDelete, path: "users/:user_id"}, nil, nil, userID)
	return err
}
