package contentgen

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/catalog"
)

//go:embed prompt.tmpl
var promptTemplateSrc string

var promptTemplate = template.Must(
	template.New("prompt").Funcs(template.FuncMap{"join": strings.Join}).Parse(promptTemplateSrc),
)

// unknownField stands in for contact attributes the caller could not
// supply, so the model personalizes on what is known instead of
// inventing specifics.
const unknownField = "unknown"

type promptData struct {
	Name       string
	JobTitle   string
	Company    string
	Industry   string
	Brief      string
	Candidates []promptCandidate
}

type promptCandidate struct {
	ID            string
	Category      string
	Description   string
	RequiredSlots []string
	Blocks        []string
	ImageSlots    []string
}

// buildPrompt renders the base generation prompt for one contact.
func buildPrompt(brief string, contact campaign.Contact, candidates []catalog.Descriptor) (string, error) {
	data := promptData{
		Name:       orUnknown(contact.FullName()),
		JobTitle:   orUnknown(contact.JobTitle),
		Company:    orUnknown(contact.Company),
		Industry:   orUnknown(contact.Industry),
		Brief:      strings.TrimSpace(brief),
		Candidates: make([]promptCandidate, 0, len(candidates)),
	}

	for _, d := range candidates {
		data.Candidates = append(data.Candidates, promptCandidate{
			ID:            d.ID,
			Category:      string(d.Category),
			Description:   d.Description,
			RequiredSlots: orNone(d.RequiredSlots()),
			Blocks:        orNone(d.Blocks),
			ImageSlots:    orNone(d.ImageSlots()),
		})
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// retryPrompt appends the violated constraints of the previous attempt
// to the base prompt.
func retryPrompt(base, violation string) string {
	return base + "\n\nYour previous response was rejected: " + violation +
		".\nRespond again with a single corrected JSON object that satisfies every rule."
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownField
	}
	return s
}

func orNone(names []string) []string {
	if len(names) == 0 {
		return []string{"none"}
	}
	return names
}
