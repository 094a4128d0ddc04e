// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the client's zerolog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscope/pkg/types"
)

// New returns a console logger on stderr at the configured level. Used by
// the one-shot commands, where stderr is free for diagnostics.
func New(cfg types.LoggingConfig) zerolog.Logger {
	return build(cfg, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// NewFile returns a logger writing JSON lines to the configured file and the
// file handle to close on shutdown. The interactive browser owns the
// terminal, so its diagnostics must go to a file; an unset path discards
// logs entirely.
func NewFile(cfg types.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return build(cfg, io.Discard), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	return build(cfg, f), f, nil
}

func build(cfg types.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
