package emailcreation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/catalog"
	"github.com/rishadfb/email-creation/pkg/render"
)

const defaultConcurrency = 4

// ContentGenerator produces validated template content for one
// contact. Implemented by contentgen.Generator.
type ContentGenerator interface {
	Generate(ctx context.Context, brief string, contact campaign.Contact, candidates []catalog.Descriptor) (campaign.Content, error)
}

// ImageResolver assigns a URL to every image slot of the chosen
// template. Implemented by imagegen.Resolver.
type ImageResolver interface {
	Resolve(ctx context.Context, content campaign.Content, descriptor catalog.Descriptor) campaign.ResolvedContent
}

// Pipeline turns a campaign brief and a contact into a finished HTML
// email: template selection and copywriting, image resolution, then
// rendering. A Pipeline holds no per-run state and is safe for
// concurrent use.
type Pipeline struct {
	catalog     *catalog.Catalog
	generator   ContentGenerator
	resolver    ImageResolver
	now         func() time.Time
	concurrency int
	logger      *slog.Logger
}

// New creates a Pipeline from its three stages.
func New(cat *catalog.Catalog, generator ContentGenerator, resolver ImageResolver, opts ...Option) (*Pipeline, error) {
	if cat == nil {
		return nil, ErrCatalogNotSet
	}
	if generator == nil {
		return nil, ErrGeneratorNotSet
	}
	if resolver == nil {
		return nil, ErrResolverNotSet
	}

	p := &Pipeline{
		catalog:     cat,
		generator:   generator,
		resolver:    resolver,
		now:         time.Now,
		concurrency: defaultConcurrency,
		logger:      slog.New(noopHandler{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// CreateEmail produces one personalized email. The model's template
// choice is re-checked against the catalog before any further work
// trusts it. Image degradations do not fail the email; they surface on
// Email.ImageFailures.
func (p *Pipeline) CreateEmail(ctx context.Context, brief string, contact campaign.Contact) (*campaign.Email, error) {
	content, err := p.generator.Generate(ctx, brief, contact, p.catalog.List())
	if err != nil {
		return nil, err
	}

	descriptor, err := p.catalog.Get(content.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("generated content references unknown template: %w", err)
	}

	resolved := p.resolver.Resolve(ctx, content, descriptor)

	tmpl, err := p.catalog.Template(descriptor.ID)
	if err != nil {
		return nil, err
	}

	html, err := tmpl.Render(p.renderValues(descriptor, resolved))
	if err != nil {
		return nil, fmt.Errorf("rendering template %q: %w", descriptor.ID, err)
	}

	return &campaign.Email{
		TemplateID:    descriptor.ID,
		Category:      string(descriptor.Category),
		Subject:       resolved.Subject,
		Preheader:     resolved.Preheader,
		HTML:          html,
		Contact:       contact,
		ImageFailures: resolved.Failures,
	}, nil
}

// CreateBatch produces one email per contact, at most p.concurrency
// in flight at once. Each contact succeeds or fails independently;
// the returned slice preserves contact order. CreateBatch itself
// never fails, per-contact errors land on Result.Err.
func (p *Pipeline) CreateBatch(ctx context.Context, brief string, contacts []campaign.Contact) []campaign.Result {
	results := make([]campaign.Result, len(contacts))

	g := new(errgroup.Group)
	g.SetLimit(p.concurrency)

	for i, contact := range contacts {
		g.Go(func() error {
			email, err := p.CreateEmail(ctx, brief, contact)
			results[i] = campaign.Result{Contact: contact, Email: email, Err: err}

			if err != nil {
				p.logger.Error("email creation failed",
					slog.String("contact_email", contact.Email),
					slog.Any("error", err))
			} else {
				p.logger.Info("email created",
					slog.String("contact_email", contact.Email),
					slog.String("template_id", email.TemplateID))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// renderValues assembles the full slot and block value set for a
// render: manifest defaults first, then model copy, then the
// pipeline-owned slots (subject, preheader, year) and resolved image
// URLs on top.
func (p *Pipeline) renderValues(descriptor catalog.Descriptor, resolved campaign.ResolvedContent) render.Values {
	slots := make(map[string]string, len(descriptor.Slots))
	for name, value := range descriptor.Defaults {
		slots[name] = value
	}
	for name, value := range resolved.Slots {
		slots[name] = value
	}
	slots[catalog.SlotSubject] = resolved.Subject
	slots[catalog.SlotPreheader] = resolved.Preheader
	slots[catalog.SlotYear] = strconv.Itoa(p.now().Year())
	for slot, url := range resolved.Images {
		slots[slot] = url
	}

	return render.Values{
		Slots:  slots,
		Blocks: resolved.Blocks,
	}
}
