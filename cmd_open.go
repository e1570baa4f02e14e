package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/shu-go/gli"
	"github.com/shu-go/slack-conv/convlist"
)

const appRedirectURL = "https://slack.com/app_redirect"

// openURL is replaced in tests.
var openURL = browser.OpenURL

type openCmd struct {
	_ struct{} `help:"open a conversation in the browser" usage:"slack-conv open general\nslack-conv open --print amy"`

	ExcludeArchived bool        `cli:"exclude-archived,e" help:"ignore archived conversations"`
	Types           gli.StrList `cli:"types=TYPES" help:"public_channel,private_channel,mpim,im (default: all)"`

	Print bool `cli:"print" help:"print the URL instead of opening it"`
}

func init() {
	gApp.AddExtraCommand(&openCmd{}, "open", "")
}

func conversationURL(id string) string {
	return appRedirectURL + "?" + url.Values{"channel": {id}}.Encode()
}

func (c openCmd) Run(global globalCmd, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return failed(c.run(ctx, global, args, os.Stdout, os.Stderr))
}

func (c openCmd) run(ctx context.Context, global globalCmd, args []string, out, logOut io.Writer) error {
	if len(args) != 1 {
		return errors.New("one QUERY is required")
	}

	s, err := newSession(global, logOut)
	if err != nil {
		return err
	}

	convs, err := s.conversations(ctx, listOptions{
		Types:           c.Types,
		ExcludeArchived: c.ExcludeArchived,
	})
	if err != nil {
		return err
	}

	conv, err := convlist.Find(convs, args[0])
	if err != nil {
		return err
	}

	u := conversationURL(conv.ID)
	if c.Print {
		fmt.Fprintln(out, u)
		return nil
	}

	s.logger.Info("opening", "conversation", conv.ID, "label", conv.Label())
	if err := openURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}
