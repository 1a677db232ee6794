// Package logging builds the zerolog logger used by tada.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/tada/internal/todo"
)

// New returns a logger that writes JSON to file. The TUI owns stdout, so
// an empty file disables logging instead of falling back to the terminal.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}

	if file == "" {
		return zerolog.Nop(), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
	}
	closer = func() { _ = f.Close() }

	l := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// Events returns a subscriber that records every controller change at
// debug level.
func Events(l zerolog.Logger) todo.Subscriber {
	return func(ev todo.Event) {
		e := l.Debug().
			Str("event", ev.Kind.String()).
			Str("filter", ev.Filter.String())
		switch ev.Kind {
		case todo.EventAdded, todo.EventDeleted, todo.EventToggled:
			e = e.Str("id", string(ev.Todo.ID)).Bool("completed", ev.Todo.Completed)
		case todo.EventCleared:
			e = e.Int("removed", ev.Removed)
		}
		e.Msg("state changed")
	}
}
