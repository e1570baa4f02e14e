package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shu-go/slack-conv/convlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openable = fakeSlack{
	pages: map[string]string{
		"": page("",
			`{"id":"C1","name":"general","is_channel":true}`,
			`{"id":"C2","name":"engineering","is_channel":true}`,
			`{"id":"D1","is_im":true,"user":"U1"}`,
		),
	},
	users: map[string]string{"U1": "amy"},
}

func TestConversationURL(t *testing.T) {
	assert.Equal(t, "https://slack.com/app_redirect?channel=C1", conversationURL("C1"))
}

func TestOpenPrint(t *testing.T) {
	global := setupWorkspace(t, openable, "")

	var out bytes.Buffer
	err := openCmd{Print: true}.run(context.Background(), global, []string{"amy"}, &out, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "https://slack.com/app_redirect?channel=D1\n", out.String())
}

func TestOpenBrowser(t *testing.T) {
	global := setupWorkspace(t, openable, "")

	var opened []string
	saved := openURL
	openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	t.Cleanup(func() { openURL = saved })

	var out bytes.Buffer
	err := openCmd{}.run(context.Background(), global, []string{"engnr"}, &out, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://slack.com/app_redirect?channel=C2"}, opened)
	assert.Empty(t, out.String())

	openURL = func(string) error { return errors.New("no browser") }
	err = openCmd{}.run(context.Background(), global, []string{"general"}, &out, io.Discard)
	assert.Error(t, err)
}

func TestOpenErrors(t *testing.T) {
	global := setupWorkspace(t, openable, "")

	err := openCmd{Print: true}.run(context.Background(), global, nil, io.Discard, io.Discard)
	assert.Error(t, err)

	err = openCmd{Print: true}.run(context.Background(), global, []string{"xyzzy"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, convlist.ErrNoMatch)
}
