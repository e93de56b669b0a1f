package emailcreation

import (
	"context"
	"log/slog"
)

// noopHandler is a slog.Handler that discards all log records.
// Used as default when no logger is provided.
type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h noopHandler) WithGroup(string) slog.Handler           { return h }
