package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// Bits is the two's-complement width for negative binary encodings.
	// Set via CONVERT_BITS; default 10.
	Bits int

	// OutputDir is where result files are written. Set via OUTPUT_DIR;
	// default is the working directory.
	OutputDir string

	// DBPath is the sqlite file recording run history. Set via NUMCONV_DB;
	// empty disables history.
	DBPath string
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	bitsStr := strings.TrimSpace(os.Getenv("CONVERT_BITS"))
	if bitsStr == "" {
		bitsStr = "10"
	}
	bits, err := strconv.Atoi(bitsStr)
	if err != nil || bits <= 0 {
		return Config{}, fmt.Errorf("invalid CONVERT_BITS %q (want a positive integer)", bitsStr)
	}

	outputDir := strings.TrimSpace(os.Getenv("OUTPUT_DIR"))
	if outputDir == "" {
		outputDir = "."
	}

	dbPath := strings.TrimSpace(os.Getenv("NUMCONV_DB"))

	return Config{
		AppEnv:    appEnv,
		LogLevel:  level,
		Bits:      bits,
		OutputDir: outputDir,
		DBPath:    dbPath,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
