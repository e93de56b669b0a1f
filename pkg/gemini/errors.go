package gemini

import "errors"

// Domain errors for Gemini API calls. ErrRateLimited and transient
// server failures are retried internally before surfacing.
var (
	ErrAPIKeyRequired  = errors.New("gemini API key is required")
	ErrRateLimited     = errors.New("gemini API rate limit exceeded")
	ErrAPIError        = errors.New("gemini API request failed")
	ErrEmptyResponse   = errors.New("gemini API returned no usable candidates")
	ErrInvalidResponse = errors.New("gemini API response could not be parsed")
)
