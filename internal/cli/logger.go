package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// newLogger writes human readable logs to w. Witnesses must never be
// passed to it.
func newLogger(w io.Writer, verbose, quiet bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(console).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
}
