package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that annotates log records
// with the environment name under the key "env". Records logged without an
// environment in context are left untouched.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
