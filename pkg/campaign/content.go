package campaign

// Content is the structured output of the content generation stage.
// Slots and Blocks are keyed by the marker names declared in the chosen
// template; ImagePrompts is keyed by image slot name and may be empty.
type Content struct {
	TemplateID   string            `json:"template_id"`
	Subject      string            `json:"subject"`
	Preheader    string            `json:"preheader"`
	Slots        map[string]string `json:"slots"`
	Blocks       map[string]bool   `json:"blocks"`
	ImagePrompts map[string]string `json:"image_prompts,omitempty"`
}

// SlotFailure records a degraded image slot: the slot received the
// fallback asset instead of a generated image, with the reason kept for
// reporting. It is informational and never aborts a run.
type SlotFailure struct {
	Slot   string `json:"slot"`
	Reason string `json:"reason"`
}

// ResolvedContent is Content with every declared image slot bound to a
// usable URL (generated asset, inline data URI, or the fallback image).
type ResolvedContent struct {
	Content

	// Images maps each declared image slot to its final URL.
	Images map[string]string `json:"images"`

	// Failures lists the image slots that fell back, if any.
	Failures []SlotFailure `json:"failures,omitempty"`
}

// Email is the assembled, sendable result of one pipeline run.
type Email struct {
	TemplateID string  `json:"template_id"`
	Category   string  `json:"category"`
	Subject    string  `json:"subject"`
	Preheader  string  `json:"preheader"`
	HTML       string  `json:"html"`
	Contact    Contact `json:"contact"`

	// ImageFailures carries over degraded image slots for reporting.
	ImageFailures []SlotFailure `json:"image_failures,omitempty"`
}

// Result pairs one contact of a batch with its outcome. Exactly one of
// Email and Err is set.
type Result struct {
	Contact Contact `json:"contact"`
	Email   *Email  `json:"email,omitempty"`
	Err     error   `json:"-"`
}
