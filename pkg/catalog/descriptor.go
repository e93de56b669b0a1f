package catalog

import "strings"

// Category groups templates by campaign purpose. It is an open string
// enum: new categories appear by adding templates to the manifest, no
// code change required.
type Category string

const (
	CategoryWelcome      Category = "welcome"
	CategoryAnnouncement Category = "announcement"
	CategoryNewsletter   Category = "newsletter"
)

// Well-known slot names filled by the pipeline rather than the model.
// They are declared in the manifest like any other slot but are excluded
// from the model's required set.
const (
	SlotSubject   = "subject"
	SlotPreheader = "preheader"
	SlotYear      = "year"
)

// imageSlotSuffix marks slots that carry generated or fallback images.
const imageSlotSuffix = "_IMAGE"

// IsImageSlot reports whether a slot name designates an image slot.
func IsImageSlot(name string) bool {
	return strings.HasSuffix(name, imageSlotSuffix)
}

// Descriptor describes one template: identity, selection context for the
// model, and the declared marker sets the markup was validated against.
type Descriptor struct {
	// ID is the unique stable identifier used in generated content.
	ID string `yaml:"id" json:"id"`

	// Category groups the template by campaign purpose.
	Category Category `yaml:"category" json:"category"`

	// Description is the selection context offered to the model. When
	// the manifest omits it, a generic one is derived from ID and
	// Category at load time.
	Description string `yaml:"description" json:"description"`

	// File is the markup path relative to the catalog root.
	File string `yaml:"file" json:"file"`

	// Slots lists every placeholder marker in the markup, in manifest
	// order. Includes image, defaulted, and pipeline-supplied slots.
	Slots []string `yaml:"slots" json:"slots"`

	// Blocks lists every conditional block marker in the markup.
	Blocks []string `yaml:"blocks" json:"blocks,omitempty"`

	// Defaults maps slots to static values the pipeline fills without
	// asking the model (footer links and similar boilerplate).
	Defaults map[string]string `yaml:"defaults" json:"defaults,omitempty"`
}

// HasSlot reports whether the template declares the named slot.
func (d Descriptor) HasSlot(name string) bool {
	for _, s := range d.Slots {
		if s == name {
			return true
		}
	}
	return false
}

// HasBlock reports whether the template declares the named block.
func (d Descriptor) HasBlock(name string) bool {
	for _, b := range d.Blocks {
		if b == name {
			return true
		}
	}
	return false
}

// ImageSlots returns the declared image slots in declaration order.
func (d Descriptor) ImageSlots() []string {
	var out []string
	for _, s := range d.Slots {
		if IsImageSlot(s) {
			out = append(out, s)
		}
	}
	return out
}

// RequiredSlots returns the slots the model must supply values for:
// everything except image slots, defaulted slots, and the
// pipeline-supplied subject, preheader, and year.
func (d Descriptor) RequiredSlots() []string {
	var out []string
	for _, s := range d.Slots {
		if IsImageSlot(s) {
			continue
		}
		if _, ok := d.Defaults[s]; ok {
			continue
		}
		if s == SlotSubject || s == SlotPreheader || s == SlotYear {
			continue
		}
		out = append(out, s)
	}
	return out
}
