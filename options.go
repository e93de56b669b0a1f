package emailcreation

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConcurrency bounds how many emails a batch creates at once.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("WithConcurrency: n must be >= 1, got %d", n))
	}
	return func(p *Pipeline) { p.concurrency = n }
}

// WithClock overrides the time source used for the year slot.
// Mainly for tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock: now cannot be nil")
	}
	return func(p *Pipeline) { p.now = now }
}

// WithLogger supplies a logger for per-contact batch outcomes. If
// nil, the pipeline is silent.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}
