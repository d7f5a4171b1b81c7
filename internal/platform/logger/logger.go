package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	App    string
}

// New construye el logger de la app sobre zerolog.
// Formato text => console writer legible (dev); json => una línea por evento.
func New(opts Options) zerolog.Logger {
	out := zerolog.New(os.Stdout)
	if strings.ToLower(strings.TrimSpace(opts.Format)) != "json" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	l := out.Level(parseLevel(opts.Level)).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		l = l.Str("app", app)
	}
	return l.Logger()
}

// NewFromEnv lee LOG_LEVEL, LOG_FORMAT y APP_NAME.
func NewFromEnv() zerolog.Logger {
	return New(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		App:    os.Getenv("APP_NAME"),
	})
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
