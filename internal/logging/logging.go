// Package logging configures the application's zerolog output.
//
// The TUI owns the terminal while it runs, so interactive sessions always
// log to a file; headless commands get a console writer on stderr. Every
// run is tagged with a session id so a shared log file can be read per run.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Options selects the log destination and level.
type Options struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string
	// File is the log file path. Empty disables file output.
	File string
	// Console adds a human-readable writer on stderr.
	Console bool
}

// NewSessionID returns a fresh ulid identifying one application run.
func NewSessionID() string {
	return ulid.Make().String()
}

// New builds a logger per opts. The returned closer releases the log file
// handle, if any, and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	closer := io.Closer(noopCloser{})

	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if opts.File != "" {
		f, fileErr := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to open log file: %w", fileErr)
		}
		writers = append(writers, f)
		closer = f
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Str("session", NewSessionID()).
		Logger()

	return logger, closer, nil
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
