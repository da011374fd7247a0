// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesJSONWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Debug("hidden")
	logger.Info("submission created", "id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "submission created", rec["msg"])
	assert.Equal(t, "abc", rec["id"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestColorHandler(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	logger := slog.New(NewColorHandler(&buf, slog.LevelWarn))

	logger.Info("skipped")
	logger.With("component", "ratelimit").WithGroup("redis").Warn("limiter unavailable", "error", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "WARN:")
	assert.Contains(t, out, "limiter unavailable")
	assert.Contains(t, out, "component=ratelimit")
	assert.NotContains(t, out, "redis.component")
	assert.Contains(t, out, "redis.error=timeout")
}

func TestColorHandlerWithAttrsDoesNotLeak(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	base := NewColorHandler(&buf, slog.LevelInfo)
	_ = base.WithAttrs([]slog.Attr{slog.String("request", "1")})

	slog.New(base).Info("plain")
	assert.NotContains(t, buf.String(), "request=1")
}
