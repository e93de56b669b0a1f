package assets

import "errors"

var (
	// Validation errors
	ErrEmptyKey   = errors.New("asset key is empty")
	ErrInvalidKey = errors.New("invalid asset key") // Prevents path traversal attacks

	// Local filesystem errors
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3-specific errors for proper error classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnknownDriver      = errors.New("unknown storage driver")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
