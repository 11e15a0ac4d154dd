package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"numconv/internal/config"
)

// New builds the process logger: a tinted console handler for dev builds,
// JSON for versioned builds. Logs go to stderr so report tables own stdout.
func New(cfg config.Config, version string, appName string) *slog.Logger {
	if version == "dev" {
		h := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
	)
}
