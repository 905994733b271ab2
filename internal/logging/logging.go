// Package logging builds the zerolog logger shared by the engine, planner and
// claude registry.
//
// Diagnostic logs go to stderr through a console writer and are kept apart
// from the colored, user-facing output printed by the cli package. The default
// level is warn so a normal run shows only warnings; --verbose or
// MCPORT_LOG_LEVEL=debug exposes every external command and its output.
package logging

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Verbose forces debug level regardless of Level.
	Verbose bool

	// Level is a zerolog level name; empty means warn.
	Level string

	// NoColor disables ANSI colors in the console writer.
	NoColor bool
}

// New returns a console logger writing to w, tagged with a fresh run id.
func New(w io.Writer, opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	return zerolog.New(console).
		Level(ParseLevel(opts.Level, opts.Verbose)).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names fall
// back to warn.
func ParseLevel(name string, verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	if name == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}
