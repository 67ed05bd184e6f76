package server

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// ConsoleMessage represents a log line forwarded to the browser console
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
}

// ConsoleHandler is a slog.Handler that passes records to an inner handler and also
// sends them to a console channel for streaming to the client
type ConsoleHandler struct {
	inner       slog.Handler
	consoleChan chan<- ConsoleMessage
	attrs       []slog.Attr
}

// NewConsoleHandler creates a handler that tees records into consoleChan
func NewConsoleHandler(inner slog.Handler, consoleChan chan<- ConsoleMessage) *ConsoleHandler {
	return &ConsoleHandler{inner: inner, consoleChan: consoleChan}
}

// Enabled reports whether the inner handler handles the level; the console only sees info and above
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo || h.inner.Enabled(ctx, level)
}

// Handle forwards the record to the inner handler and, without blocking, to the console
func (h *ConsoleHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	if h.inner.Enabled(ctx, record.Level) {
		err = h.inner.Handle(ctx, record)
	}

	if h.consoleChan != nil && record.Level >= slog.LevelInfo {
		select {
		case h.consoleChan <- ConsoleMessage{
			Message:   formatRecord(record, h.attrs),
			Timestamp: record.Time,
			Level:     strings.ToLower(record.Level.String()),
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
	return err
}

// WithAttrs returns a handler whose records carry attrs
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{
		inner:       h.inner.WithAttrs(attrs),
		consoleChan: h.consoleChan,
		attrs:       append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

// WithGroup is passed through to the inner handler; console lines stay flat
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{
		inner:       h.inner.WithGroup(name),
		consoleChan: h.consoleChan,
		attrs:       h.attrs,
	}
}

// formatRecord renders "message key=value ..." for display
func formatRecord(record slog.Record, attrs []slog.Attr) string {
	var sb strings.Builder
	sb.WriteString(record.Message)
	write := func(a slog.Attr) bool {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString("=")
		sb.WriteString(a.Value.String())
		return true
	}
	for _, a := range attrs {
		write(a)
	}
	record.Attrs(write)
	return sb.String()
}
