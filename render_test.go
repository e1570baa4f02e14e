package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/shu-go/slack-conv/convlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

var sample = []convlist.Conversation{
	{ID: "G1", Marker: convlist.MarkerGroupDM, Names: []string{"amy", "bob"}},
	{ID: "C1", Marker: convlist.MarkerPublic, Names: []string{"general"}, IsArchived: true},
}

func TestPresentation(t *testing.T) {
	icon, fg := presentation(convlist.Conversation{IsArchived: true, IsDeleted: true})
	assert.Equal(t, "🗑", icon)
	assert.Equal(t, color.FgRed, fg)

	icon, fg = presentation(convlist.Conversation{IsArchived: true})
	assert.Equal(t, "🗄", icon)
	assert.Equal(t, color.FgYellow, fg)

	icon, _ = presentation(convlist.Conversation{})
	assert.Equal(t, "🗒", icon)
}

func TestRenderText(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	renderText(&buf, sample, "")
	assert.Equal(t, "All conversations you have access to:\n🗒 G1: &amy, &bob\n🗄 C1: #general\n", buf.String())

	buf.Reset()
	renderText(&buf, nil, "zzz")
	assert.Equal(t, "All conversations with names that contain `zzz` that you have access to:\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, nil, ""))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, renderJSON(&buf, sample, `.[] | select(.is_archived) | .id`))
	assert.Equal(t, "\"C1\"\n", buf.String())

	buf.Reset()
	require.NoError(t, renderJSON(&buf, sample, `map(.id) | join(",")`))
	assert.Equal(t, "\"G1,C1\"\n", buf.String())
}

func TestRenderJSONBadQuery(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, renderJSON(&buf, sample, ".[] |"))
	assert.Error(t, renderJSON(&buf, sample, ".[0].names + 1"))
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderCSV(&buf, sample))
	assert.Equal(t, "id,type,names,is_archived,is_deleted\nG1,&,amy;bob,false,false\nC1,#,general,true,false\n", buf.String())
}

func TestRenderTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTemplate(&buf, sample, "{{.ID}}={{.Label}}"))
	assert.Equal(t, "G1=&amy, &bob\nC1=#general\n", buf.String())

	assert.Error(t, renderTemplate(&buf, sample, "{{.ID"))
	assert.Error(t, renderTemplate(&buf, sample, "{{.Nope}}"))
}
