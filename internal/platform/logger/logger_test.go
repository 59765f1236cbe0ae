package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/9novikoff/TaskManagementSystem/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		checkLevel slog.Level
		enabled    bool
	}{
		{name: "debug enables debug", configured: "debug", checkLevel: slog.LevelDebug, enabled: true},
		{name: "info disables debug", configured: "info", checkLevel: slog.LevelDebug, enabled: false},
		{name: "warn disables info", configured: "warn", checkLevel: slog.LevelInfo, enabled: false},
		{name: "error enables error", configured: "error", checkLevel: slog.LevelError, enabled: true},
		{name: "unknown falls back to info", configured: "loud", checkLevel: slog.LevelInfo, enabled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.configured})
			assert.Equal(t, tc.enabled, log.Enabled(context.Background(), tc.checkLevel))
		})
	}
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	carried := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), carried)
	assert.Same(t, carried, FromContext(ctx))

	// No logger in context: fall back to the process default.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
