// Package logger provides the zerolog loggers used by the command-line tools.
package logger

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// NewWithWriter returns a JSON logger on w tagged with serviceName.
// Call sites should use .Stack() on error events to include stacks.
func NewWithWriter(w io.Writer, serviceName string) zerolog.Logger {
	configureErrorStacks()
	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger on w, at debug level when debug
// is set and info level otherwise.
func NewConsole(w io.Writer, debug bool) zerolog.Logger {
	configureErrorStacks()
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}

// configureErrorStacks makes zerolog render github.com/pkg/errors stacks,
// attaching one to plain errors when .Stack() is requested.
func configureErrorStacks() {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}
