// Package testutil provides small helpers shared by the package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// LogCapture is a slog.Handler that records every message it receives, so
// tests can assert on emitted diagnostics.
type LogCapture struct {
	mu       sync.Mutex
	messages []string
}

func (c *LogCapture) Enabled(context.Context, slog.Level) bool { return true }

func (c *LogCapture) Handle(_ context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, r.Message)
	return nil
}

func (c *LogCapture) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *LogCapture) WithGroup(string) slog.Handler      { return c }

// Messages returns the captured log messages in arrival order.
func (c *LogCapture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// Logger returns a logger feeding the returned capture.
func Logger() (*slog.Logger, *LogCapture) {
	c := &LogCapture{}
	return slog.New(c), c
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
