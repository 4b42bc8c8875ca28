package app

import (
	"log/slog"
	"os"
)

// NewLogger returns a configured slog.Logger based on configuration.
// "json" emits structured JSON with source locations for production,
// "text" the equivalent logfmt output, and "pretty" (the default) a
// compact text format without source locations for local development.
func NewLogger(cfg *Config) *slog.Logger {
	format := "pretty"
	if cfg != nil && cfg.LogFormat != "" {
		format = cfg.LogFormat
	}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	case "text":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	}
}
