package assets

import (
	"context"
	"fmt"
	"strings"
)

// Storage persists a generated asset and returns its public URL.
// Implementations must be safe for concurrent use; image resolution
// uploads assets from multiple goroutines.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Storage drivers selectable via Config.Driver.
const (
	DriverInline = "inline" // no storage, assets embedded as data URIs
	DriverLocal  = "local"
	DriverS3     = "s3"
)

// Config contains asset storage configuration loaded from environment
// variables. The default driver keeps generated images inline so the
// pipeline works without any storage backend.
type Config struct {
	Driver string `env:"ASSET_STORAGE_DRIVER" envDefault:"inline"`

	LocalDir     string `env:"ASSET_LOCAL_DIR" envDefault:"./assets"`
	LocalBaseURL string `env:"ASSET_LOCAL_BASE_URL" envDefault:"/assets/"`

	S3Bucket         string `env:"ASSET_S3_BUCKET"`
	S3Region         string `env:"ASSET_S3_REGION"`
	S3AccessKeyID    string `env:"ASSET_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"ASSET_S3_SECRET_KEY"`
	S3Endpoint       string `env:"ASSET_S3_ENDPOINT"`
	S3BaseURL        string `env:"ASSET_S3_BASE_URL"`
	S3ForcePathStyle bool   `env:"ASSET_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// New creates a Storage for the configured driver. The inline driver
// returns nil: callers treat a nil Storage as "embed the bytes".
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case DriverInline, "":
		return nil, nil
	case DriverLocal:
		return NewLocalStorage(cfg.LocalDir, cfg.LocalBaseURL)
	case DriverS3:
		return NewS3Storage(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			BaseURL:        cfg.S3BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Ext maps an asset content type to a file extension for key
// generation. Unknown types get a neutral extension instead of an
// error; the stored bytes are served with the recorded content type
// regardless.
func Ext(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}

// validateKey normalizes a storage key and rejects traversal attempts.
func validateKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return key, nil
}
