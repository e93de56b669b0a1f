package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = map[reflect.Type]any{}

	dotenvOnce sync.Once
)

// Load parses environment variables into v by its env tags. The first
// successful load of each struct type is cached; later calls for the
// same type return the cached copy so every consumer sees identical
// values. A default .env file is read once per process before the first
// parse; a missing file is not an error.
//
// Example:
//
//	type GeneratorConfig struct {
//		APIKey     string `env:"GEMINI_API_KEY,required"`
//		TextModel  string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.0-flash"`
//		ImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"imagen-3.0-generate-002"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the common case outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(v).Elem()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use for configs the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
