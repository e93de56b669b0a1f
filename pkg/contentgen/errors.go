package contentgen

import "errors"

// Domain errors for content generation. ErrGenerationFailed means the
// model never produced schema-conformant output within the attempt
// budget; the batch treats it as a per-contact failure.
var (
	ErrProviderNotSet   = errors.New("content provider not set")
	ErrEmptyBrief       = errors.New("campaign brief is empty")
	ErrNoCandidates     = errors.New("no candidate templates provided")
	ErrGenerationFailed = errors.New("content generation failed")
)
