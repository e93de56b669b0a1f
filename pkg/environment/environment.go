package environment

import "context"

// Environment identifies the deployment environment the service runs in.
type Environment string

const (
	// Development is the local environment where generated emails are
	// written to disk instead of being delivered.
	Development Environment = "development"
	// Staging is the pre-production environment.
	Staging Environment = "staging"
	// Production is the live environment that delivers real email.
	Production Environment = "production"
)

type contextKey struct{}

// WithContext returns a context carrying the given environment.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when absent.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction reports whether the environment in ctx is production.
// The short alias "prod" is accepted.
func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Production || env == "prod"
}

// IsDevelopment reports whether the environment in ctx is development.
// The short alias "dev" is accepted.
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Development || env == "dev"
}

// IsStaging reports whether the environment in ctx is staging.
// The short alias "stage" is accepted.
func IsStaging(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Staging || env == "stage"
}
