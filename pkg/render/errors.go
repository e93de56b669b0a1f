package render

import "errors"

// Domain errors for template compilation and rendering.
// Wrap with fmt.Errorf("%w: ...") to add marker names and positions;
// callers branch with errors.Is.
var (
	ErrInvalidMarkup = errors.New("invalid template markup")
	ErrMissingSlot   = errors.New("missing value for template marker")
)
