package main

import (
	"context"
	"fmt"
	"log/slog"

	emailcreation "github.com/rishadfb/email-creation"
	"github.com/rishadfb/email-creation/pkg/assets"
	"github.com/rishadfb/email-creation/pkg/catalog"
	"github.com/rishadfb/email-creation/pkg/contentgen"
	"github.com/rishadfb/email-creation/pkg/gemini"
	"github.com/rishadfb/email-creation/pkg/httpserver"
	"github.com/rishadfb/email-creation/pkg/imagegen"
	"github.com/rishadfb/email-creation/templates"
)

// generateConfig is the environment surface of the generate command.
type generateConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Gemini gemini.Config
	Assets assets.Config
}

// serveConfig is the environment surface of the serve command.
type serveConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Concurrency int    `env:"PIPELINE_CONCURRENCY" envDefault:"4"`
	Gemini      gemini.Config
	Assets      assets.Config
	HTTP        httpserver.Config
}

// app bundles the wired pipeline with the collaborators the commands
// need alongside it.
type app struct {
	pipeline *emailcreation.Pipeline
	catalog  *catalog.Catalog
	storage  assets.Storage
}

// buildApp wires the template catalog, the Gemini provider, asset storage
// and the pipeline itself.
func buildApp(ctx context.Context, log *slog.Logger, geminiCfg gemini.Config, assetsCfg assets.Config, concurrency int) (*app, error) {
	cat, err := catalog.Load(templates.FS, catalog.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("loading template catalog: %w", err)
	}

	client, err := gemini.New(geminiCfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	storage, err := assets.New(ctx, assetsCfg)
	if err != nil {
		return nil, fmt.Errorf("configuring asset storage: %w", err)
	}

	generator, err := contentgen.New(client, contentgen.WithLogger(log))
	if err != nil {
		return nil, err
	}

	resolverOpts := []imagegen.Option{
		imagegen.WithProvider(client),
		imagegen.WithLogger(log),
	}
	if storage != nil {
		resolverOpts = append(resolverOpts, imagegen.WithStorage(storage))
	}
	resolver := imagegen.New(resolverOpts...)

	pipeline, err := emailcreation.New(cat, generator, resolver,
		emailcreation.WithLogger(log),
		emailcreation.WithConcurrency(concurrency),
	)
	if err != nil {
		return nil, err
	}

	return &app{pipeline: pipeline, catalog: cat, storage: storage}, nil
}
