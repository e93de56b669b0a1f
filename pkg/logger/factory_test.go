package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishadfb/email-creation/pkg/logger"
)

// decodeRecord parses the single JSON record written to buf.
func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to JSON at info level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)

		log.Debug("filtered")
		assert.Zero(t, buf.Len())

		log.Info("template selected")
		entry := decodeRecord(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "template selected", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("rendering email", slog.String("template_id", "welcome_email"))

		out := buf.String()
		assert.Contains(t, out, "msg=\"rendering email\"")
		assert.Contains(t, out, "template_id=welcome_email")
	})

	t.Run("last format option wins", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")

		entry := decodeRecord(t, buf)
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("debug passes with lowered level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("resolving image slots")

		entry := decodeRecord(t, buf)
		assert.Equal(t, "DEBUG", entry["level"])
	})

	t.Run("handler options override level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelError}),
		)
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("static attributes on every record", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Component("pipeline")),
		)
		log.Info("batch started")

		entry := decodeRecord(t, buf)
		assert.Equal(t, "pipeline", entry["component"])
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	type ctxKey string

	t.Run("extractor attaches per-call attribute", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		key := ctxKey("run_id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(key).(string); ok {
					return slog.String("run_id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), key, "run-42")
		log.InfoContext(ctx, "contact processed")

		entry := decodeRecord(t, buf)
		assert.Equal(t, "run-42", entry["run_id"])
	})

	t.Run("extractor skips absent values", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		key := ctxKey("run_id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", key),
		)

		log.InfoContext(context.Background(), "no run in context")

		entry := decodeRecord(t, buf)
		assert.NotContains(t, entry, "run_id")
	})

	t.Run("context value option", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		key := ctxKey("request_id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", key),
		)

		ctx := context.WithValue(context.Background(), key, "req-9")
		log.InfoContext(ctx, "preview requested")

		entry := decodeRecord(t, buf)
		assert.Equal(t, "req-9", entry["request_id"])
	})

	t.Run("nil extractors are dropped", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(nil))

		assert.NotPanics(t, func() {
			log.InfoContext(context.Background(), "still logs")
		})
		entry := decodeRecord(t, buf)
		assert.Equal(t, "still logs", entry["msg"])
	})
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	logger.SetAsDefault(log)

	slog.Info("default")

	entry := decodeRecord(t, buf)
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { logger.WithFormat("xml") })
	assert.NotPanics(t, func() { logger.WithFormat(logger.FormatJSON) })
	assert.NotPanics(t, func() { logger.WithFormat(logger.FormatText) })
}
