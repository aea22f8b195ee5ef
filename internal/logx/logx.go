// Package logx configures the zerolog logger the rest of the program uses.
package logx

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger at the given level. Verbose mode lowers the floor to
// debug and switches to the human-readable console writer; otherwise output
// is plain JSON on stderr so it never interleaves with screen rendering on
// stdout.
func New(level string, verbose bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	lvl := parseLevel(level)
	if verbose {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		if lvl > zerolog.DebugLevel {
			lvl = zerolog.DebugLevel
		}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
