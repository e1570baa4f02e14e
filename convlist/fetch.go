package convlist

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/slack-go/slack"
)

const (
	MethodConversationsList = "conversations.list"
	MethodUsersInfo         = "users.info"

	// PageLimit is the page size asked of conversations.list.
	PageLimit = 1000
)

// AllTypes are the conversation types conversations.list accepts.
var AllTypes = []string{"public_channel", "private_channel", "mpim", "im"}

// ValidateTypes rejects anything outside AllTypes.
func ValidateTypes(types []string) error {
	for _, t := range types {
		known := false
		for _, a := range AllTypes {
			if t == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown conversation type %q (want one of %s)", t, strings.Join(AllTypes, ", "))
		}
	}
	return nil
}

// PageRequest is the query of one conversations.list call.
type PageRequest struct {
	Types           []string
	ExcludeArchived bool
	Cursor          string
}

// Page is one decoded conversations.list response.
type Page struct {
	Conversations []RawConversation
	NextCursor    string
	Warning       string
}

// PageFetcher fetches a single page.
type PageFetcher interface {
	FetchPage(ctx context.Context, req PageRequest) (Page, error)
}

var _ PageFetcher = (*Client)(nil)

type listResponse struct {
	Ok               bool                   `json:"ok"`
	Warning          string                 `json:"warning"`
	Channels         []RawConversation      `json:"channels"`
	ResponseMetadata slack.ResponseMetadata `json:"response_metadata"`
}

func (r *listResponse) matched() bool {
	return r.Ok && r.Channels != nil
}

// FetchPage performs one conversations.list call. It does not retry.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (Page, error) {
	values := url.Values{
		"exclude_archived": {strconv.FormatBool(req.ExcludeArchived)},
		"limit":            {strconv.Itoa(PageLimit)},
		"types":            {strings.Join(req.Types, ",")},
	}
	if req.Cursor != "" {
		values.Set("cursor", req.Cursor)
	}

	var resp listResponse
	if err := c.get(ctx, MethodConversationsList, values, &resp); err != nil {
		return Page{}, err
	}

	if resp.Warning != "" {
		c.Logger.WarnContext(ctx, "slack warning", "method", MethodConversationsList, "warning", resp.Warning)
	}
	c.Logger.DebugContext(ctx, "fetched page", "conversations", len(resp.Channels), "more", resp.ResponseMetadata.Cursor != "")

	return Page{
		Conversations: resp.Channels,
		NextCursor:    resp.ResponseMetadata.Cursor,
		Warning:       resp.Warning,
	}, nil
}
