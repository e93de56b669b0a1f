package contentgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rishadfb/email-creation/pkg/campaign"
)

// stripMarkdownFences removes a wrapping ``` code fence from model
// output. Models often fence JSON despite instructions; the content
// inside is kept verbatim.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
			s = s[:idx]
		} else {
			s = strings.TrimSuffix(s, "```")
		}
	}
	return strings.TrimSpace(s)
}

// parseContent decodes raw model output into campaign.Content after
// fence stripping. A decode failure is a schema violation the retry
// loop can correct.
func parseContent(raw string) (campaign.Content, error) {
	var content campaign.Content
	cleaned := stripMarkdownFences(raw)
	if cleaned == "" {
		return content, fmt.Errorf("the response was empty")
	}
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return content, fmt.Errorf("the response was not a valid JSON object matching the schema (%v)", err)
	}
	return content, nil
}
