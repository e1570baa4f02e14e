package convlist

import (
	"context"
	"net/url"

	"github.com/slack-go/slack"
)

// UserNameResolver turns a user id into a display name.
type UserNameResolver interface {
	UserName(ctx context.Context, userID string) (string, error)
}

var _ UserNameResolver = (*Client)(nil)

type userResponse struct {
	Ok   bool        `json:"ok"`
	User *slack.User `json:"user"`
}

// Deleted accounts keep their name, so both kinds match.
func (r *userResponse) matched() bool {
	return r.Ok && r.User != nil && r.User.Name != ""
}

// UserName looks up one user with users.info. Results are not cached.
func (c *Client) UserName(ctx context.Context, userID string) (string, error) {
	var resp userResponse
	if err := c.get(ctx, MethodUsersInfo, url.Values{"user": {userID}}, &resp); err != nil {
		return "", err
	}

	c.Logger.DebugContext(ctx, "resolved user", "user", userID, "name", resp.User.Name, "deleted", resp.User.Deleted)
	return resp.User.Name, nil
}
