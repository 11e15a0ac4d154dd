package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"numconv/internal/app"
	"numconv/internal/config"
	"numconv/internal/logging"
)

const (
	appName = "convertnumbers"
	// Default version is "dev" if not set with -ldflags "-X main.version=..."
	version = "dev"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s fileWithData.txt\n", os.Args[0])
		os.Exit(1)
	}

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"bits", cfg.Bits,
		"input", os.Args[1],
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunConvert(ctx, cfg, os.Args[1], os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
