package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/fatih/color"
	"github.com/gobwas/glob"
	"github.com/shu-go/slack-conv/convlist"
)

// session is what every subcommand needs: config, logger and an API client.
type session struct {
	config *config
	logger *slog.Logger
	client *convlist.Client
}

func newSession(global globalCmd, logOut io.Writer) (*session, error) {
	logger, err := newLogger(logOut, global)
	if err != nil {
		return nil, err
	}

	if global.NoColor {
		color.NoColor = true
	}

	config, err := loadConfig(global.Config, logger)
	if err != nil {
		return nil, err
	}

	tokenFile := config.Slack.TokenFile
	if global.TokenFile != "" {
		tokenFile = global.TokenFile
	}
	token, err := convlist.ReadTokenFile(tokenFile)
	if err != nil {
		return nil, err
	}

	timeout, err := config.timeout()
	if err != nil {
		return nil, err
	}

	client := convlist.New(token,
		convlist.OptionAPIURL(config.Slack.APIURL),
		convlist.OptionHTTPClient(&http.Client{Timeout: timeout}),
		convlist.OptionLogger(logger),
	)

	return &session{config: config, logger: logger, client: client}, nil
}

// listOptions are the knobs shared by ls and open.
type listOptions struct {
	Types           []string
	ExcludeArchived bool
	Substring       string
	Glob            string
	KeepGoing       bool
	Concurrency     int
}

// resolve fills unset options from the config file.
func (s *session) resolve(o listOptions) (listOptions, convlist.LookupPolicy, error) {
	if len(o.Types) == 0 {
		o.Types = s.config.List.Types
	}
	if len(o.Types) == 0 {
		o.Types = convlist.AllTypes
	}
	if err := convlist.ValidateTypes(o.Types); err != nil {
		return o, convlist.LookupAbort, err
	}

	o.ExcludeArchived = o.ExcludeArchived || s.config.List.ExcludeArchived
	if o.Concurrency <= 0 {
		o.Concurrency = s.config.List.Concurrency
	}

	policy, err := convlist.ParseLookupPolicy(s.config.List.OnLookupError)
	if err != nil {
		return o, convlist.LookupAbort, err
	}
	if o.KeepGoing {
		policy = convlist.LookupPlaceholder
	}
	return o, policy, nil
}

// conversations runs the whole pipeline: paginate, normalize, filter, sort.
// Nothing is returned unless every step succeeded.
func (s *session) conversations(ctx context.Context, o listOptions) ([]convlist.Conversation, error) {
	o, policy, err := s.resolve(o)
	if err != nil {
		return nil, err
	}

	var pattern glob.Glob
	if o.Glob != "" {
		pattern, err = glob.Compile(o.Glob)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("retrieving all conversations", "types", o.Types, "exclude_archived", o.ExcludeArchived)
	raws, err := convlist.ListConversations(ctx, s.client, convlist.PageRequest{
		Types:           o.Types,
		ExcludeArchived: o.ExcludeArchived,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("normalizing conversations", "count", len(raws))
	n := convlist.Normalizer{
		Resolver:      s.client,
		Logger:        s.logger,
		Concurrency:   o.Concurrency,
		OnLookupError: policy,
	}
	convs, err := n.Normalize(ctx, raws)
	if err != nil {
		return nil, err
	}

	convs = convlist.Filter(convs, o.Substring)
	convs = convlist.FilterGlob(convs, pattern)
	s.logger.Debug("filtered conversations", "substring", o.Substring, "glob", o.Glob, "kept", len(convs))

	convlist.SortNames(convs)
	convlist.Sort(convs)
	return convs, nil
}
