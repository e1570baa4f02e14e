package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"github.com/itchyny/gojq"
	"github.com/shu-go/slack-conv/convlist"
)

// presentation picks icon and color; a deleted user outranks archival.
func presentation(c convlist.Conversation) (string, color.Attribute) {
	switch {
	case c.IsDeleted:
		return "🗑", color.FgRed
	case c.IsArchived:
		return "🗄", color.FgYellow
	default:
		return "🗒", color.FgWhite
	}
}

func renderText(w io.Writer, convs []convlist.Conversation, substring string) {
	if substring == "" {
		fmt.Fprintln(w, "All conversations you have access to:")
	} else {
		fmt.Fprintf(w, "All conversations with names that contain `%s` that you have access to:\n", substring)
	}

	for _, c := range convs {
		icon, fg := presentation(c)
		plain := color.New(fg)
		bold := color.New(fg, color.Bold)
		fmt.Fprintf(w, "%s %s%s\n", plain.Sprint(icon), bold.Sprint(c.ID), plain.Sprint(": "+c.Label()))
	}
}

func renderTemplate(w io.Writer, convs []convlist.Conversation, format string) error {
	tmpl, err := template.New("conversation").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	for _, c := range convs {
		buf := new(strings.Builder)
		if err := tmpl.Execute(buf, c); err != nil {
			return err
		}
		fmt.Fprintln(w, buf.String())
	}
	return nil
}

// renderJSON prints convs as a JSON array, or every result of query run
// against that array.
func renderJSON(w io.Writer, convs []convlist.Conversation, query string) error {
	if convs == nil {
		convs = []convlist.Conversation{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if query == "" {
		return enc.Encode(convs)
	}

	q, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("invalid jq expression: %w", err)
	}

	data, err := json.Marshal(convs)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	iter := q.Run(v)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := result.(error); ok {
			return fmt.Errorf("jq: %w", err)
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	return nil
}

type csvRow struct {
	ID         string `csv:"id"`
	Type       string `csv:"type"`
	Names      string `csv:"names"`
	IsArchived bool   `csv:"is_archived"`
	IsDeleted  bool   `csv:"is_deleted"`
}

func renderCSV(w io.Writer, convs []convlist.Conversation) error {
	rows := make([]csvRow, 0, len(convs))
	for _, c := range convs {
		rows = append(rows, csvRow{
			ID:         c.ID,
			Type:       string(c.Marker),
			Names:      strings.Join(c.Names, ";"),
			IsArchived: c.IsArchived,
			IsDeleted:  c.IsDeleted,
		})
	}
	return gocsv.Marshal(&rows, w)
}
