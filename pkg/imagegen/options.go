package imagegen

import (
	"fmt"
	"log/slog"

	"github.com/rishadfb/email-creation/pkg/assets"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithProvider sets the image generation backend. Without a provider
// every image slot resolves to the fallback URL.
func WithProvider(p Provider) Option {
	return func(r *Resolver) {
		r.provider = p
	}
}

// WithStorage sets the asset storage for generated images. Without
// storage, images are embedded into the HTML as data URIs.
func WithStorage(s assets.Storage) Option {
	return func(r *Resolver) {
		r.storage = s
	}
}

// WithFallbackURL overrides the URL used for slots that could not be
// generated. Panics on an empty URL since image slots must always
// resolve to something renderable.
func WithFallbackURL(url string) Option {
	if url == "" {
		panic("WithFallbackURL: url cannot be empty")
	}
	return func(r *Resolver) {
		r.fallbackURL = url
	}
}

// WithConcurrency bounds how many images are generated at once for a
// single email.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("WithConcurrency: n must be >= 1, got %d", n))
	}
	return func(r *Resolver) {
		r.concurrency = n
	}
}

// WithLogger supplies a logger for degradation visibility. If nil,
// failures are only visible through the returned SlotFailures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
