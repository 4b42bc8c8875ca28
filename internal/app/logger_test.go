package app_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/app"
	_ "github.com/campo-erp/campo-erp/testing"
)

func TestNewLoggerFormats(t *testing.T) {
	jsonLogger := app.NewLogger(&app.Config{LogFormat: "json"})
	_, ok := jsonLogger.Handler().(*slog.JSONHandler)
	require.True(t, ok, "json format should build a JSON handler")

	textLogger := app.NewLogger(&app.Config{LogFormat: "text"})
	_, ok = textLogger.Handler().(*slog.TextHandler)
	require.True(t, ok, "text format should build a text handler")

	prettyLogger := app.NewLogger(&app.Config{LogFormat: "pretty"})
	_, ok = prettyLogger.Handler().(*slog.TextHandler)
	require.True(t, ok, "pretty format should build a text handler")
}

func TestNewLoggerNilConfigDefaultsToPretty(t *testing.T) {
	logger := app.NewLogger(nil)
	require.NotNil(t, logger)
	_, ok := logger.Handler().(*slog.TextHandler)
	require.True(t, ok)
}
