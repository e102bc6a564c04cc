package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// See https://github.com/golang/go/issues/62005 for details about why
// we have this. When that issue is closed, we should be able to use
// slog's built in discard handler.
type discardHandler struct {
	slog.TextHandler
}

func (d *discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

// Setup installs the default slog logger. Output never goes to the
// terminal we're driving, so without a logfile everything is
// discarded.
func Setup(logfile string, debug bool) error {
	l, err := New(logfile, debug)
	if err != nil {
		return err
	}

	slog.SetDefault(l)
	return nil
}

// New returns a logger writing text records to logfile, or one that
// discards everything when logfile is empty.
func New(logfile string, debug bool) (*slog.Logger, error) {
	if logfile == "" {
		return slog.New(&discardHandler{}), nil
	}

	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("couldn't open logfile %q: %w", logfile, err)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(f, opts)), nil
}
