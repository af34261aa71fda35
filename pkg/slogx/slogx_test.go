package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/fitplus/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, slogx.ParseLevel(in), in)
	}
}

func TestNewWritesToOutputAndFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var out, file bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "fitplus",
		Version: "test",
		Env:     "test",
		Level:   "info",
		Format:  "json",
		Output:  &out,
		File:    &file,
	})
	logger.Debug("hidden")
	logger.Info("hello", "k", "v")

	require.Equal(t, out.String(), file.String())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "fitplus", rec["service"])
	require.Equal(t, "v", rec["k"])
}

func TestWithSession(t *testing.T) {
	var out bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&out, nil))

	ctx := slogx.WithContext(context.Background(), base)
	ctx = slogx.WithSession(ctx, "01ABC", "alice")
	slogx.FromContext(ctx).Info("tagged")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "01ABC", rec["session_id"])
	require.Equal(t, "alice", rec["user"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}
