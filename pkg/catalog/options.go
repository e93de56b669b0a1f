package catalog

import (
	"context"
	"log/slog"
)

type options struct {
	manifestPath string
	logger       *slog.Logger
}

// Option configures catalog loading.
type Option func(*options)

// WithManifest overrides the manifest path resolved against the catalog
// file system.
func WithManifest(path string) Option {
	if path == "" {
		panic("WithManifest: path cannot be empty")
	}
	return func(o *options) { o.manifestPath = path }
}

// WithLogger supplies the logger used to report skipped templates. If
// nil, skips are silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }

func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}
