package convlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves pages in order and records the cursors it was asked for.
type fakeFetcher struct {
	pages   []Page
	errAt   int
	err     error
	cursors []string
}

func (f *fakeFetcher) FetchPage(ctx context.Context, req PageRequest) (Page, error) {
	f.cursors = append(f.cursors, req.Cursor)
	i := len(f.cursors) - 1
	if f.err != nil && i == f.errAt {
		return Page{}, f.err
	}
	if i >= len(f.pages) {
		return Page{}, errors.New("fetched past the last page")
	}
	return f.pages[i], nil
}

func raw(id, name string) RawConversation {
	return RawConversation{Kind: PublicChannel, ID: id, Name: name}
}

func TestListConversationsFollowsCursors(t *testing.T) {
	f := &fakeFetcher{pages: []Page{
		{Conversations: []RawConversation{raw("C1", "a"), raw("C2", "b")}, NextCursor: "c1"},
		{Conversations: []RawConversation{raw("C3", "c")}, NextCursor: "c2"},
		{Conversations: []RawConversation{raw("C4", "d")}, NextCursor: ""},
		{Conversations: []RawConversation{raw("C5", "never")}},
	}}

	got, err := ListConversations(context.Background(), f, PageRequest{Types: AllTypes, Cursor: "ignored"})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "c1", "c2"}, f.cursors)
	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"C1", "C2", "C3", "C4"}, ids)
}

func TestListConversationsEmptyPageWithCursorContinues(t *testing.T) {
	f := &fakeFetcher{pages: []Page{
		{NextCursor: "c1"},
		{Conversations: []RawConversation{raw("C1", "a")}},
	}}

	got, err := ListConversations(context.Background(), f, PageRequest{Types: AllTypes})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []string{"", "c1"}, f.cursors)
}

func TestListConversationsPropagatesErrors(t *testing.T) {
	apiErr := &APIError{Method: MethodConversationsList, Code: "ratelimited"}
	f := &fakeFetcher{
		pages: []Page{{Conversations: []RawConversation{raw("C1", "a")}, NextCursor: "c1"}},
		errAt: 1,
		err:   apiErr,
	}

	got, err := ListConversations(context.Background(), f, PageRequest{Types: AllTypes})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apiErr)
}

func TestListConversationsRepeatedCursor(t *testing.T) {
	f := &fakeFetcher{pages: []Page{
		{NextCursor: "c1"},
		{NextCursor: "c2"},
		{NextCursor: "c1"},
	}}

	_, err := ListConversations(context.Background(), f, PageRequest{Types: AllTypes})
	assert.ErrorIs(t, err, ErrRepeatedCursor)
	assert.True(t, IsDecodeError(err))
	assert.Equal(t, []string{"", "c1", "c2"}, f.cursors)
}
