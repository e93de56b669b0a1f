package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rishadfb/email-creation/pkg/render"
)

// DefaultManifest is the manifest path resolved against the catalog FS.
const DefaultManifest = "catalog.yaml"

type manifest struct {
	Templates []Descriptor `yaml:"templates"`
}

type entry struct {
	descriptor Descriptor
	raw        string
	template   *render.Template
}

// Catalog is the loaded template set. It is built once by Load and is
// immutable afterwards, safe for unsynchronized concurrent reads.
type Catalog struct {
	entries map[string]*entry
	ordered []Descriptor
}

// Load reads the manifest and every referenced markup file from fsys,
// validating each template's declared slots and blocks against its
// compiled markup. A template that fails to read, compile, or validate
// is logged and skipped; the rest of the catalog still loads. An
// unreadable manifest or an empty result is a hard error.
func Load(fsys fs.FS, opts ...Option) (*Catalog, error) {
	cfg := options{
		manifestPath: DefaultManifest,
		logger:       newNoopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := fs.ReadFile(fsys, cfg.manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrManifestInvalid, cfg.manifestPath, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrManifestInvalid, cfg.manifestPath, err)
	}

	c := &Catalog{entries: make(map[string]*entry, len(m.Templates))}
	for _, d := range m.Templates {
		e, err := loadEntry(fsys, d)
		if err != nil {
			cfg.logger.Warn("skipping template",
				slog.String("template_id", d.ID),
				slog.String("file", d.File),
				slog.Any("error", err))
			continue
		}
		if _, dup := c.entries[e.descriptor.ID]; dup {
			cfg.logger.Warn("skipping template",
				slog.String("template_id", d.ID),
				slog.Any("error", fmt.Errorf("%w: duplicate id", ErrTemplateLoad)))
			continue
		}
		c.entries[e.descriptor.ID] = e
		c.ordered = append(c.ordered, e.descriptor)
	}

	if len(c.entries) == 0 {
		return nil, ErrNoTemplates
	}

	sort.Slice(c.ordered, func(i, j int) bool {
		a, b := c.ordered[i], c.ordered[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.ID < b.ID
	})

	return c, nil
}

// loadEntry reads, compiles, and cross-validates one template.
func loadEntry(fsys fs.FS, d Descriptor) (*entry, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrTemplateLoad)
	}
	if d.Category == "" {
		return nil, fmt.Errorf("%w: missing category", ErrTemplateLoad)
	}
	if d.File == "" {
		return nil, fmt.Errorf("%w: missing file", ErrTemplateLoad)
	}
	if len(d.Slots) == 0 {
		return nil, fmt.Errorf("%w: no slots declared", ErrTemplateLoad)
	}

	raw, err := fs.ReadFile(fsys, d.File)
	if err != nil {
		return nil, fmt.Errorf("%w: read markup: %v", ErrTemplateLoad, err)
	}

	tmpl, err := render.Compile(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}

	if err := matchSets("slot", d.Slots, tmpl.Slots()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	if err := matchSets("block", d.Blocks, tmpl.Blocks()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	for slot := range d.Defaults {
		if !d.HasSlot(slot) {
			return nil, fmt.Errorf("%w: default for undeclared slot %q", ErrTemplateLoad, slot)
		}
	}

	if d.Description == "" {
		d.Description = autoDescription(d.ID, d.Category)
	}

	return &entry{descriptor: d, raw: string(raw), template: tmpl}, nil
}

// matchSets verifies that the declared marker names and the names found
// in compiled markup are the same set, reporting the first divergence.
func matchSets(kind string, declared, found []string) error {
	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}
	foundSet := make(map[string]bool, len(found))
	for _, name := range found {
		foundSet[name] = true
	}

	for _, name := range found {
		if !declaredSet[name] {
			return fmt.Errorf("markup uses undeclared %s %q", kind, name)
		}
	}
	for _, name := range declared {
		if !foundSet[name] {
			return fmt.Errorf("declared %s %q not present in markup", kind, name)
		}
	}
	return nil
}

// autoDescription derives a usable selection description from the id and
// category when the manifest does not provide one.
func autoDescription(id string, category Category) string {
	name := cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
	return fmt.Sprintf("%s email in the %s category", name, category)
}

// List returns every loaded descriptor ordered by category, then id.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get returns the descriptor for id, or ErrTemplateNotFound.
func (c *Catalog) Get(id string) (Descriptor, error) {
	e, ok := c.entries[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return e.descriptor, nil
}

// RawMarkup returns the unmodified markup for id, or
// ErrTemplateNotFound.
func (c *Catalog) RawMarkup(id string) (string, error) {
	e, ok := c.entries[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return e.raw, nil
}

// Template returns the compiled markup for id, or ErrTemplateNotFound.
// The returned template is shared and safe for concurrent rendering.
func (c *Catalog) Template(id string) (*render.Template, error) {
	e, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return e.template, nil
}
