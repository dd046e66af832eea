// Package logging provides the logger passed down to every subsystem of the server.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging capability the subsystems depend on. Every subsystem receives its
// own named logger, there is no global one.
type Logger interface {
	// Printf logs an informational message, with the same formatting semantics as log.Printf.
	Printf(format string, args ...any)
	// Debugf logs a message useful only while debugging.
	Debugf(format string, args ...any)
	// Errorf logs a failure.
	Errorf(format string, args ...any)
	// Named returns a logger of the subsystem.
	Named(subsystem string) Logger
}

type zlogger struct {
	log zerolog.Logger
}

// New returns a logger writing JSON lines into the writer.
func New(w io.Writer, level zerolog.Level) Logger {
	return FromZerolog(zerolog.New(w).Level(level).With().Timestamp().Logger())
}

// NewConsole returns a logger writing human-readable lines into the writer.
func NewConsole(w io.Writer, level zerolog.Level) Logger {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}, level)
}

// FromZerolog wraps an already configured zerolog.Logger.
func FromZerolog(log zerolog.Logger) Logger {
	return zlogger{log: log}
}

// Configure builds the process logger writing into stderr. The level is one of zerolog's
// level names, an empty one means info.
func Configure(level string, console bool) (Logger, error) {
	lvl := zerolog.InfoLevel
	if len(level) > 0 {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	if console {
		return NewConsole(os.Stderr, lvl), nil
	}

	return New(os.Stderr, lvl), nil
}

func (z zlogger) Printf(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}

func (z zlogger) Debugf(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}

func (z zlogger) Errorf(format string, args ...any) {
	z.log.Error().Msgf(format, args...)
}

func (z zlogger) Named(subsystem string) Logger {
	return zlogger{log: z.log.With().Str("logger", subsystem).Logger()}
}

// Nop returns a logger discarding everything.
func Nop() Logger {
	return zlogger{log: zerolog.Nop()}
}
