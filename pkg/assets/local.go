package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage for the local filesystem. All writes
// are confined to baseDir to prevent path traversal. The dev HTTP
// server mounts baseDir under baseURL so stored assets resolve.
type LocalStorage struct {
	baseDir string // Absolute path - all assets stored within this directory
	baseURL string // URL prefix for serving assets (e.g., "/assets/")
}

// NewLocalStorage creates a local filesystem storage rooted at baseDir.
// baseDir is resolved to an absolute path and created if it does not
// exist. baseURL is the public prefix for generated URLs.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL == "" {
		baseURL = "/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}, nil
}

// Put writes an asset under the base directory and returns its URL.
// Parent directories in the key are created as needed.
func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	key, err := validateKey(key)
	if err != nil {
		return "", err
	}

	absPath, err := s.resolveKey(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return s.URL(key), nil
}

// Dir returns the absolute base directory, for mounting a static file
// handler over stored assets.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

// URL returns the public URL for a stored asset.
func (s *LocalStorage) URL(key string) string {
	key = filepath.ToSlash(filepath.Clean(key))
	return s.baseURL + strings.TrimPrefix(key, "/")
}

// resolveKey validates that a key resolves within the base directory.
func (s *LocalStorage) resolveKey(key string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(key)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	return absPath, nil
}
