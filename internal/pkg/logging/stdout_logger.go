package logging

import (
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var StdoutLogger = NewStdoutLogger(slog.LevelInfo)

func NewStdoutLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	err := parsed.UnmarshalText([]byte(strings.TrimSpace(level)))
	return parsed, err
}
