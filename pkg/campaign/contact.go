// Package campaign defines the shared data types that flow through the
// email creation pipeline: contacts, generated content, resolved content,
// and final emails. It contains no behavior beyond light helpers so that
// every stage of the pipeline can depend on it without cycles.
package campaign

import "strings"

// Contact holds the recipient profile used for personalization.
// Field names mirror the contacts.json import format.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	Industry  string `json:"industry"`
}

// FullName returns the contact's display name, or an empty string when
// neither name part is set.
func (c Contact) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// ContactList is the wire format of a contact import file or request body.
type ContactList struct {
	Contacts []Contact `json:"contacts"`
}
