// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/fuzzscore/internal/config"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// New returns a logger writing to w with the configured level and format.
func New(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch cfg.LogFormat {
	case config.FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
