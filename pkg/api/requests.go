package api

import (
	"strings"

	"github.com/rishadfb/email-creation/pkg/campaign"
)

// maxBatchContacts caps one batch request; larger imports go through the
// CLI, which streams results to disk instead of holding them in one
// response body.
const maxBatchContacts = 100

// PreviewRequest asks for a single personalized email without delivery.
type PreviewRequest struct {
	Brief   string           `json:"brief"`
	Contact campaign.Contact `json:"contact"`
}

// Validate checks the request and returns per-field problems.
func (r PreviewRequest) Validate() ValidationError {
	errs := NewValidationError()
	if strings.TrimSpace(r.Brief) == "" {
		errs.Add("brief", "is required")
	}
	return errs
}

// BatchRequest asks for one personalized email per contact.
type BatchRequest struct {
	Brief    string             `json:"brief"`
	Contacts []campaign.Contact `json:"contacts"`
}

// Validate checks the request and returns per-field problems.
func (r BatchRequest) Validate() ValidationError {
	errs := NewValidationError()
	if strings.TrimSpace(r.Brief) == "" {
		errs.Add("brief", "is required")
	}
	if len(r.Contacts) == 0 {
		errs.Add("contacts", "must contain at least one contact")
	}
	if len(r.Contacts) > maxBatchContacts {
		errs.Add("contacts", "must contain at most 100 contacts")
	}
	return errs
}
