package logger

import (
	"io"
	"log/slog"
	"os"
)

// InitJSONLogger configures and sets the default slog logger to use JSON format on stdout.
func InitJSONLogger(level slog.Level) {
	slog.SetDefault(NewJSONLogger(os.Stdout, level))
}

// NewJSONLogger creates a JSON slog logger writing to w at the given minimum level.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
