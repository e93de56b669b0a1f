package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env files into the process
// environment. With no arguments it loads the default ".env" from the
// working directory without overriding variables that are already set.
// When paths are given they are applied in order and later files take
// precedence, so a deploy-specific overlay can follow a base file.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) == 0 {
		err = godotenv.Load()
	} else {
		err = godotenv.Overload(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure. Use during
// startup when the named env files are required to exist.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ForceReloadConfig re-parses the environment into v, bypassing and
// refreshing the cache for its type. Intended for tests that mutate
// environment variables between loads.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	cache[reflect.TypeOf(v).Elem()] = *v
	cacheMu.Unlock()

	return nil
}

// ResetCache clears all cached configuration values so the next Load
// parses the environment again. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = map[reflect.Type]any{}
}
