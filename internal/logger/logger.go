// Package logger configures structured JSON logging for the whole process.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup builds a slog.Logger that writes JSON records to w.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault installs a JSON logger as the process-wide default.
// Pass nil to log to stdout, which is what production does.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(Setup(w))
}
