package contentgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/catalog"
)

// defaultAttempts is one initial call plus two corrective retries.
const defaultAttempts = 3

// Provider is the model backend that turns a prompt into raw text.
// Implemented by gemini.Client in production.
type Provider interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator produces schema-valid, personalized email content. The
// model both ranks the candidate templates and writes the copy; the
// generator enforces structural conformance only and never overrides
// the model's template choice.
type Generator struct {
	provider Provider
	attempts int
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithAttempts overrides the total attempt budget, including the first
// call. Mainly for tests.
func WithAttempts(n int) Option {
	if n < 1 {
		panic("WithAttempts: attempts must be >= 1")
	}
	return func(g *Generator) { g.attempts = n }
}

// WithLogger supplies a logger for retry visibility. If nil, retries
// are silent.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator backed by the given provider.
func New(provider Provider, opts ...Option) (*Generator, error) {
	if provider == nil {
		return nil, ErrProviderNotSet
	}
	g := &Generator{
		provider: provider,
		attempts: defaultAttempts,
		logger:   slog.New(noopHandler{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate asks the model to pick one of the candidate templates and
// write content for it. Output that fails schema validation triggers a
// retry with the violated constraints appended to the prompt; when the
// attempt budget is exhausted the last failure is returned wrapping
// ErrGenerationFailed. There is no fallback to a default template.
func (g *Generator) Generate(ctx context.Context, brief string, contact campaign.Contact, candidates []catalog.Descriptor) (campaign.Content, error) {
	if strings.TrimSpace(brief) == "" {
		return campaign.Content{}, ErrEmptyBrief
	}
	if len(candidates) == 0 {
		return campaign.Content{}, ErrNoCandidates
	}

	basePrompt, err := buildPrompt(brief, contact, candidates)
	if err != nil {
		return campaign.Content{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	prompt := basePrompt
	var lastFailure string

	for attempt := 1; attempt <= g.attempts; attempt++ {
		raw, err := g.provider.GenerateContent(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return campaign.Content{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
			}
			lastFailure = fmt.Sprintf("the model call failed (%v)", err)
			g.logger.Warn("content generation attempt failed",
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			continue
		}

		content, violation := validate(raw, candidates)
		if violation == "" {
			return content, nil
		}

		lastFailure = violation
		g.logger.Warn("content generation attempt rejected",
			slog.Int("attempt", attempt),
			slog.String("violation", violation))
		prompt = retryPrompt(basePrompt, violation)
	}

	return campaign.Content{}, fmt.Errorf("%w after %d attempts: %s", ErrGenerationFailed, g.attempts, lastFailure)
}

// validate parses raw output and checks it against the candidate set.
// It returns the cleaned content, or a violation message suitable for a
// corrective retry prompt. Unknown slots, blocks, and image prompts are
// dropped rather than rejected.
func validate(raw string, candidates []catalog.Descriptor) (campaign.Content, string) {
	content, err := parseContent(raw)
	if err != nil {
		return campaign.Content{}, err.Error()
	}

	var descriptor *catalog.Descriptor
	for i := range candidates {
		if candidates[i].ID == content.TemplateID {
			descriptor = &candidates[i]
			break
		}
	}
	if descriptor == nil {
		return campaign.Content{}, fmt.Sprintf("template_id %q is not one of the available templates", content.TemplateID)
	}

	var violations []string
	if strings.TrimSpace(content.Subject) == "" {
		violations = append(violations, `"subject" must be non-empty text`)
	}
	if strings.TrimSpace(content.Preheader) == "" {
		violations = append(violations, `"preheader" must be non-empty text`)
	}

	for _, slot := range descriptor.RequiredSlots() {
		if strings.TrimSpace(content.Slots[slot]) == "" {
			violations = append(violations, fmt.Sprintf("slot %q must be present with non-empty text", slot))
		}
	}

	for _, block := range descriptor.Blocks {
		if _, ok := content.Blocks[block]; !ok {
			violations = append(violations, fmt.Sprintf("block %q must be present with an explicit true or false", block))
		}
	}

	if len(violations) > 0 {
		return campaign.Content{}, strings.Join(violations, "; ")
	}

	return cleanContent(content, *descriptor), ""
}

// cleanContent drops keys outside the chosen descriptor's declared
// sets: undeclared slots, image slots masquerading as text slots,
// undeclared blocks, and prompts for anything but declared image slots.
func cleanContent(content campaign.Content, d catalog.Descriptor) campaign.Content {
	slots := make(map[string]string, len(content.Slots))
	for name, value := range content.Slots {
		if !d.HasSlot(name) || catalog.IsImageSlot(name) {
			continue
		}
		if name == catalog.SlotSubject || name == catalog.SlotPreheader {
			continue
		}
		slots[name] = value
	}

	blocks := make(map[string]bool, len(content.Blocks))
	for name, value := range content.Blocks {
		if d.HasBlock(name) {
			blocks[name] = value
		}
	}

	prompts := make(map[string]string, len(content.ImagePrompts))
	for name, value := range content.ImagePrompts {
		if d.HasSlot(name) && catalog.IsImageSlot(name) && strings.TrimSpace(value) != "" {
			prompts[name] = value
		}
	}

	content.Slots = slots
	content.Blocks = blocks
	content.ImagePrompts = prompts
	return content
}
