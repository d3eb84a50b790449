package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a stderr handler so packages can log before Init runs
// (and so tests that never call Init don't panic on a nil logger).
var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
