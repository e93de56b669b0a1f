package environment_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rishadfb/email-creation/pkg/environment"
)

func TestWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
	}{
		{name: "development", env: environment.Development},
		{name: "staging", env: environment.Staging},
		{name: "production", env: environment.Production},
		{name: "custom value", env: environment.Environment("sandbox")},
		{name: "empty value", env: environment.Environment("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.env, environment.FromContext(ctx))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	})

	t.Run("unset context", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, environment.Environment(""), environment.FromContext(context.TODO()))
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     environment.Environment
		isDev   bool
		isStage bool
		isProd  bool
	}{
		{name: "development", env: environment.Development, isDev: true},
		{name: "dev alias", env: environment.Environment("dev"), isDev: true},
		{name: "staging", env: environment.Staging, isStage: true},
		{name: "stage alias", env: environment.Environment("stage"), isStage: true},
		{name: "production", env: environment.Production, isProd: true},
		{name: "prod alias", env: environment.Environment("prod"), isProd: true},
		{name: "unknown value", env: environment.Environment("sandbox")},
		{name: "empty value", env: environment.Environment("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.isDev, environment.IsDevelopment(ctx))
			assert.Equal(t, tt.isStage, environment.IsStaging(ctx))
			assert.Equal(t, tt.isProd, environment.IsProduction(ctx))
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	t.Run("environment present", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Production)
		attr, ok := environment.LoggerExtractor()(ctx)

		assert.True(t, ok)
		assert.Equal(t, "env", attr.Key)
		assert.Equal(t, "production", attr.Value.String())
	})

	t.Run("environment absent", func(t *testing.T) {
		t.Parallel()

		attr, ok := environment.LoggerExtractor()(context.Background())

		assert.False(t, ok)
		assert.Equal(t, slog.Attr{}, attr)
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Environment(""))
		attr, ok := environment.LoggerExtractor()(ctx)

		assert.False(t, ok)
		assert.Equal(t, slog.Attr{}, attr)
	})
}
