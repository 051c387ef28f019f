// File: sinks.go
// Role: Sinks, the injectable console+log stream pair, and the thin
// slog-backed helper built on top of the log stream.
package diag

import (
	"fmt"
	"io"
	"log/slog"
)

// Sinks holds the two streams user-visible diagnostics are written
// through: Console for human-facing text, Log for structured records.
// Both are plain io.Writers so the embedder can redirect either
// independently (a file, a bytes.Buffer in tests, os.Stdout/os.Stderr
// in a CLI front-end).
type Sinks struct {
	Console io.Writer
	Log     io.Writer

	logger *slog.Logger
}

// NewSinks returns a Sinks writing to console and log. A nil argument
// is replaced with io.Discard, so a zero-value embedder never panics
// and never pollutes a test's stdout by accident.
func NewSinks(console, log io.Writer) *Sinks {
	if console == nil {
		console = io.Discard
	}
	if log == nil {
		log = io.Discard
	}

	s := &Sinks{Console: console, Log: log}
	s.logger = slog.New(slog.NewJSONHandler(log, nil))

	return s
}

// Discard returns Sinks that drop everything written to them — the
// default an embedder that doesn't care about diagnostics can pass.
func Discard() *Sinks {
	return NewSinks(nil, nil)
}

// Printf writes a human-facing line to the console stream.
func (s *Sinks) Printf(format string, args ...any) {
	fmt.Fprintf(s.Console, format+"\n", args...)
}

// Logger returns the slog.Logger backed by the log stream, for
// structured records (invariant violations, rejected operations).
func (s *Sinks) Logger() *slog.Logger {
	return s.logger
}
