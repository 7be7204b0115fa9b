package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/config"
)

// Module provides the application logger.
var Module = fx.Provide(New)

// New creates a preconfigured slog.Logger.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
