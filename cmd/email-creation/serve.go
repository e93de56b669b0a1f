package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/rishadfb/email-creation/pkg/api"
	"github.com/rishadfb/email-creation/pkg/assets"
	"github.com/rishadfb/email-creation/pkg/config"
	"github.com/rishadfb/email-creation/pkg/environment"
	"github.com/rishadfb/email-creation/pkg/httpserver"
	"github.com/rishadfb/email-creation/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the email creation HTTP API",
		Long: "Serve exposes the pipeline over HTTP: preview and batch email\n" +
			"creation plus template catalog browsing. With local asset storage\n" +
			"the generated images are served from the same process.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			env := environment.Environment(cfg.Env)
			log := logger.New(
				logger.WithEnvironment(cfg.Env, "email-creation"),
				logger.WithContextExtractors(environment.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			ctx := cmd.Context()

			application, err := buildApp(ctx, log, cfg.Gemini, cfg.Assets, cfg.Concurrency)
			if err != nil {
				return err
			}

			apiRouter, err := api.NewRouter(api.Deps{
				Creator: application.pipeline,
				Catalog: application.catalog,
				Logger:  log,
			})
			if err != nil {
				return err
			}

			r := chi.NewRouter()
			r.Use(environment.Middleware(env))
			r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
			r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, func(context.Context) error {
				if len(application.catalog.List()) == 0 {
					return errors.New("template catalog is empty")
				}
				return nil
			}))
			r.Mount("/api", apiRouter)
			mountLocalAssets(r, application.storage, cfg.Assets.LocalBaseURL, log)

			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(l *slog.Logger) {
					l.Info("server listening",
						logger.Component("serve"),
						slog.String("addr", cfg.HTTP.Addr),
						slog.String("env", cfg.Env))
				}),
				httpserver.WithStopHook(func(l *slog.Logger) {
					l.Info("server stopped", logger.Component("serve"))
				}),
			)

			return srv.Run(ctx, r)
		},
	}
}

// mountLocalAssets serves locally stored assets when the configured base
// URL is a path on this server. Absolute base URLs mean a CDN or reverse
// proxy fronts the asset directory instead.
func mountLocalAssets(r chi.Router, storage assets.Storage, baseURL string, log *slog.Logger) {
	local, ok := storage.(*assets.LocalStorage)
	if !ok || !strings.HasPrefix(baseURL, "/") {
		return
	}
	prefix := baseURL
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(local.Dir()))))
	log.Info("serving local assets",
		logger.Component("serve"),
		slog.String("dir", local.Dir()),
		slog.String("prefix", prefix))
}
