// Package logging builds the diagnostic logger. User facing output goes
// through internal/ui instead.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"tractor.dev/bank/internal/config"
)

// New returns a logger for cfg and a closer for any file it opened. With a
// log file configured records are written there as JSON, otherwise as text
// on stderr.
func New(cfg *config.Config) (*slog.Logger, io.Closer) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), io.NopCloser(nil)
	}
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
	}
	return slog.New(slog.NewJSONHandler(w, opts)), w
}
