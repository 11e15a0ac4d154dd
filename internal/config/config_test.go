package config

import (
	"log/slog"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "CONVERT_BITS", "OUTPUT_DIR", "NUMCONV_DB"} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.AppEnv != "dev" {
		t.Errorf("AppEnv = %q; want dev", cfg.AppEnv)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v; want info", cfg.LogLevel)
	}
	if cfg.Bits != 10 {
		t.Errorf("Bits = %d; want 10", cfg.Bits)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q; want .", cfg.OutputDir)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q; want empty (history disabled)", cfg.DBPath)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONVERT_BITS", "16")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("NUMCONV_DB", "/tmp/history.db")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.AppEnv != "prod" || cfg.LogLevel != slog.LevelDebug || cfg.Bits != 16 {
		t.Errorf("cfg = %+v; want prod/debug/16", cfg)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.DBPath != "/tmp/history.db" {
		t.Errorf("cfg = %+v; want paths carried through", cfg)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	cases := []struct{ key, value string }{
		{"APP_ENV", "staging"},
		{"LOG_LEVEL", "verbose"},
		{"CONVERT_BITS", "0"},
		{"CONVERT_BITS", "-4"},
		{"CONVERT_BITS", "ten"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(c.key, c.value)
			if _, err := LoadFromEnv(); err == nil {
				t.Errorf("LoadFromEnv with %s=%q: want error, got nil", c.key, c.value)
			}
		})
	}
}
