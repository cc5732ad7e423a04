package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. format "console" gives the
// human-readable writer used in development; anything else writes JSON.
func Setup(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).
		With().
		Timestamp().
		Str("service", "mecanica-rff").
		Logger().
		Level(ParseLevel(level))
}

func ParseLevel(value string) zerolog.Level {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(v); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
