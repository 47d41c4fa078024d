// Package config loads the settings bank takes from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds environment driven settings. Flags are handled by the command.
type Config struct {
	LogLevel      slog.Level
	LogFile       string
	LogMaxSize    int // megabytes
	LogMaxBackups int
	NoColor       bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		LogFile:       envOr("BANK_LOG_FILE", ""),
		LogMaxSize:    envInt("BANK_LOG_MAX_SIZE", 10),
		LogMaxBackups: envInt("BANK_LOG_MAX_BACKUPS", 3),
		NoColor:       envBool("BANK_NO_COLOR", false) || os.Getenv("NO_COLOR") != "",
	}

	level := envOr("BANK_LOG_LEVEL", "warn")
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("BANK_LOG_LEVEL: unknown level %q", level)
	}
	if cfg.LogMaxSize <= 0 {
		return nil, fmt.Errorf("BANK_LOG_MAX_SIZE must be positive")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
