package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry), "output: %s", raw)
	return entry
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo)

	log.Info("product created", slog.String("product_id", "1"), slog.Int("status", 201))

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "product created", entry["msg"])
	assert.Equal(t, "1", entry["product_id"])
	assert.Equal(t, float64(201), entry["status"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewJSONLogger_Level(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		logFn   func(*slog.Logger)
		written bool
	}{
		{name: "info below warn is dropped", level: slog.LevelWarn, logFn: func(l *slog.Logger) { l.Info("x") }},
		{name: "warn at warn is kept", level: slog.LevelWarn, logFn: func(l *slog.Logger) { l.Warn("x") }, written: true},
		{name: "debug below info is dropped", level: slog.LevelInfo, logFn: func(l *slog.Logger) { l.Debug("x") }},
		{name: "error above info is kept", level: slog.LevelInfo, logFn: func(l *slog.Logger) { l.Error("x") }, written: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFn(NewJSONLogger(&buf, tt.level))
			assert.Equal(t, tt.written, buf.Len() > 0)
		})
	}
}

func TestInitJSONLogger(t *testing.T) {
	// given
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	previous := slog.Default()
	t.Cleanup(func() {
		os.Stdout = oldStdout
		slog.SetDefault(previous)
	})

	// when
	InitJSONLogger(slog.LevelDebug)
	slog.Debug("starting", slog.String("port", "3000"))
	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	// then
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "starting", entry["msg"])
	assert.Equal(t, "3000", entry["port"])
	assert.Equal(t, "DEBUG", entry["level"])
}
