package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/shu-go/gli"
)

type listCmd struct {
	_ struct{} `help:"list conversations you have access to" usage:"# everything\nslack-conv ls\n# names containing eng, no archived ones\nslack-conv ls -e eng\n# only DMs, as JSON ids\nslack-conv ls --types mpim,im --jq '.[].id'"`

	ExcludeArchived bool        `cli:"exclude-archived,e" help:"exclude archived conversations"`
	Types           gli.StrList `cli:"types=TYPES" help:"public_channel,private_channel,mpim,im (default: all)"`
	Glob            string      `cli:"glob=PATTERN" help:"keep conversations having a name matching PATTERN"`

	KeepGoing   bool `cli:"keep-going" help:"name a direct message by user id when its user lookup fails"`
	Concurrency int  `cli:"concurrency=N" help:"parallel user lookups (default: 1)"`

	Format string `cli:"format=TEMPLATE" help:"text/template per conversation, e.g. '{{.ID}}\t{{.Label}}'"`
	JSON   bool   `cli:"json" help:"print JSON"`
	JQ     string `cli:"jq=EXPR" help:"filter the JSON output with a jq expression (implies --json)"`
	CSV    bool   `cli:"csv" help:"print CSV"`
}

func init() {
	gApp.AddExtraCommand(&listCmd{}, "ls,list", "")
}

func (c listCmd) Run(global globalCmd, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return failed(c.run(ctx, global, args, os.Stdout, os.Stderr))
}

func (c listCmd) run(ctx context.Context, global globalCmd, args []string, out, logOut io.Writer) error {
	start := time.Now()

	if len(args) > 1 {
		return errors.New("at most one SUBSTRING is allowed")
	}
	var substring string
	if len(args) == 1 {
		substring = args[0]
	}

	asJSON := c.JSON || c.JQ != ""
	outputs := 0
	for _, on := range []bool{asJSON, c.CSV, c.Format != ""} {
		if on {
			outputs++
		}
	}
	if outputs > 1 {
		return errors.New("--json/--jq, --csv and --format are exclusive")
	}

	s, err := newSession(global, logOut)
	if err != nil {
		return err
	}

	convs, err := s.conversations(ctx, listOptions{
		Types:           c.Types,
		ExcludeArchived: c.ExcludeArchived,
		Substring:       substring,
		Glob:            c.Glob,
		KeepGoing:       c.KeepGoing,
		Concurrency:     c.Concurrency,
	})
	if err != nil {
		return err
	}

	switch {
	case asJSON:
		err = renderJSON(out, convs, c.JQ)
	case c.CSV:
		err = renderCSV(out, convs)
	case c.Format != "":
		err = renderTemplate(out, convs, c.Format)
	default:
		renderText(out, convs, substring)
	}
	if err != nil {
		return err
	}

	s.logger.Info("command completed", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
