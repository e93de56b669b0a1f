package gemini

import "time"

// Config holds Gemini API client configuration. Only the API key is
// required; model names track the defaults used by the pipeline and can
// be overridden per environment.
type Config struct {
	APIKey     string        `env:"GEMINI_API_KEY,required"`
	Model      string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`                       // Model generates email copy as JSON.
	ImageModel string        `env:"GEMINI_IMAGE_MODEL" envDefault:"imagen-3.0-generate-002"`          // ImageModel generates slot images.
	BaseURL    string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"` // BaseURL allows pointing at a proxy or mock.
	Timeout    time.Duration `env:"GEMINI_TIMEOUT" envDefault:"90s"`                                  // Timeout bounds a single API call including retries.
}
