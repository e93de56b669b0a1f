package binder

import "errors"

// Sentinel errors the API layer maps onto 400 responses.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrMissingContentType   = errors.New("missing content type")
)
