package convlist

import (
	"context"
	"fmt"
)

// ListConversations follows next_cursor from the first page until the server
// returns an empty one and concatenates the pages in server order.
// params.Cursor is ignored.
func ListConversations(ctx context.Context, f PageFetcher, params PageRequest) ([]RawConversation, error) {
	var convs []RawConversation
	seen := make(map[string]struct{})

	params.Cursor = ""

LOOP:
	for {
		page, err := f.FetchPage(ctx, params)
		if err != nil {
			return nil, err
		}

		convs = append(convs, page.Conversations...)

		if page.NextCursor == "" {
			break LOOP
		}
		if _, dup := seen[page.NextCursor]; dup {
			return nil, &DecodeError{
				Method: MethodConversationsList,
				Err:    fmt.Errorf("%w: %q", ErrRepeatedCursor, page.NextCursor),
			}
		}
		seen[page.NextCursor] = struct{}{}

		params.Cursor = page.NextCursor
	}

	return convs, nil
}
