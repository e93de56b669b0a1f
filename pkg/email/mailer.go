package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rishadfb/email-creation/pkg/campaign"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string            `json:"send_to"`            // Email address of the recipient
	Subject  string            `json:"subject"`            // Subject of the email
	BodyHTML string            `json:"body_html"`          // HTML body of the email
	Tag      string            `json:"tag,omitempty"`      // Optional, for provider-side analytics
	Metadata map[string]string `json:"metadata,omitempty"` // Optional, attached to the delivery record
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the parameters describe a deliverable email.
func (p SendEmailParams) Validate() error {
	sendTo := strings.TrimSpace(p.SendTo)
	if sendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(sendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// ParamsFromEmail converts a pipeline-produced email into send
// parameters. The template category becomes the provider tag; template id
// and the contact's company and industry travel as metadata for campaign
// reporting.
func ParamsFromEmail(e *campaign.Email) SendEmailParams {
	metadata := map[string]string{
		"template_id": e.TemplateID,
	}
	if e.Contact.Company != "" {
		metadata["company"] = e.Contact.Company
	}
	if e.Contact.Industry != "" {
		metadata["industry"] = e.Contact.Industry
	}
	return SendEmailParams{
		SendTo:   e.Contact.Email,
		Subject:  e.Subject,
		BodyHTML: e.HTML,
		Tag:      e.Category,
		Metadata: metadata,
	}
}
