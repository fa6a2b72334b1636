// Package logging builds the zerolog logger used across postboard.
//
// The TUI owns stdout/stderr while it runs, so interactive sessions log to a
// file (or nowhere); scriptable commands log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at lvl. Non-interactive commands
// pass the command's stderr.
func New(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Open returns a logger for path. An empty path yields a no-op logger.
// The returned close func is always non-nil.
func Open(path string, lvl zerolog.Level) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f.Close, nil
}
