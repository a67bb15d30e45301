// Package testutil provides shared test helpers.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger returns a logger routing records at or above level through
// t.Log, so loader traces only appear on test failure or with -v.
func NewTestLogger(t testing.TB, level slog.Level) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: level,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// The text handler terminates each record; t.Log adds its own newline.
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
