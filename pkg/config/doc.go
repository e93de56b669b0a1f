// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only
//     parsed once for the lifetime of the process.
//   - Exposes helpers that panic on failure (MustLoadEnv, MustLoad) for
//     configuration the process cannot start without.
//   - Allows explicit cache reset or force reload, which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a process-wide cache of parsed struct
// copies keyed by reflect.Type. The cache lock is held across parsing,
// so concurrent loads of the same type serialize and all of them see
// the copy produced by the first successful parse.
//
// # Usage
//
// Each package owning configuration declares a struct with `env` tags;
// the application composes them at startup:
//
//	type AppConfig struct {
//	    Gemini gemini.Config
//	    Email  email.Config
//	    Assets assets.Config
//	}
//
//	func main() {
//	    var cfg AppConfig
//	    config.MustLoad(&cfg)
//
//	    client, err := gemini.New(cfg.Gemini)
//	    // ...
//	}
//
// To load additional env files before parsing (a base file plus a
// deploy-specific overlay):
//
//	if err := config.LoadEnv(".env", ".env.production"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
// # Caching Behavior
//
// Load caches per struct type. Two calls with the same type return the
// same values even if the environment changed in between; tests that
// mutate the environment should use ForceReloadConfig or ResetCache.
package config
