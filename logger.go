package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/shu-go/slack-conv/convlist"
)

// levelOff is above every level anything logs at.
const levelOff = slog.Level(1 << 10)

// logLevel maps the verbosity flags: silent > trace > verbose > quiet > info.
func logLevel(g globalCmd) (slog.Level, error) {
	if g.Silent {
		return levelOff, nil
	}
	if g.Quiet && (g.Verbose || g.Trace) {
		return 0, errors.New("--quiet conflicts with --verbose and --trace")
	}

	switch {
	case g.Trace:
		return convlist.LevelTrace, nil
	case g.Verbose:
		return slog.LevelDebug, nil
	case g.Quiet:
		return slog.LevelWarn, nil
	default:
		return slog.LevelInfo, nil
	}
}

func newLogger(w io.Writer, g globalCmd) (*slog.Logger, error) {
	level, err := logLevel(g)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if l, ok := a.Value.Any().(slog.Level); ok && l <= convlist.LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	})
	return slog.New(handler), nil
}
