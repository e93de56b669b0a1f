// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// The core type is Server which wraps *http.Server and augments it with:
//
//   - Graceful Shutdown: Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received and then shuts the server down using
//     http.Server.Shutdown with a configurable deadline.
//
//   - Functional Options: construction goes through New or NewFromConfig
//     together with Option helpers such as WithAddr, WithReadTimeout and
//     WithLogger.
//
//   - Hooks: WithStartHook and WithStopHook let callers execute side-effects
//     around the server life-cycle.
//
//   - Health Checks: HealthCheckHandler returns an http.HandlerFunc that can
//     be mounted as both liveness and readiness probes.
//
// # Architecture
//
// A Server is configured once through Option values and started with Run,
// which builds the underlying *http.Server and serves in its own goroutine.
// The run context is bound to os.Interrupt and syscall.SIGTERM, so either a
// cancelled context or a signal triggers graceful shutdown. All public errors
// are wrapped with ErrStart and ErrShutdown sentinel errors so they can be
// inspected with errors.Is.
//
// # Usage
//
// The email creation API mounts its router on this server:
//
//	import (
//		"context"
//		"log/slog"
//		"time"
//
//		"github.com/go-chi/chi/v5"
//		"github.com/rishadfb/email-creation/pkg/httpserver"
//	)
//
//	func main() {
//		r := chi.NewRouter()
//		r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), slog.Default()))
//
//		srv := httpserver.NewFromConfig(cfg.HTTP,
//			httpserver.WithLogger(log),
//			httpserver.WithStartHook(func(l *slog.Logger) {
//				l.Info("listening", slog.String("addr", cfg.HTTP.Addr))
//			}),
//		)
//
//		if err := srv.Run(context.Background(), r); err != nil {
//			slog.Error("server stopped", "err", err)
//		}
//	}
//
// A readiness probe can verify the template catalog and content provider:
//
//	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
//		func(ctx context.Context) error { return catalogCheck(ctx) },
//	))
//
// # Errors
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
