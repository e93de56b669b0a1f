package render

import (
	"fmt"
	"html"
	"strings"
)

// Values supplies the data for one rendering pass. Slots and Blocks are
// separate namespaces: a block may share its name with a slot (a block can
// gate the fragment that displays the slot's value).
type Values struct {
	Slots  map[string]string
	Blocks map[string]bool
}

// Template is compiled markup ready for rendering. It is immutable and
// safe for concurrent use.
type Template struct {
	nodes  []node
	slots  []string
	blocks []string
}

// Slots returns the distinct slot names referenced by the markup, in
// first-appearance order.
func (t *Template) Slots() []string {
	out := make([]string, len(t.slots))
	copy(out, t.slots)
	return out
}

// Blocks returns the distinct conditional block names referenced by the
// markup, in first-appearance order.
func (t *Template) Blocks() []string {
	out := make([]string, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// Render produces the final document. Every slot in the markup must have
// a value and every block a boolean, otherwise ErrMissingSlot is
// returned; partially substituted output is never produced. Slot values
// are HTML-escaped on insertion. Rendering is a pure function of the
// compiled markup and values.
func (t *Template) Render(values Values) (string, error) {
	var b strings.Builder
	if err := renderNodes(&b, t.nodes, values); err != nil {
		return "", err
	}
	return b.String(), nil
}

type node interface {
	render(b *strings.Builder, values Values) error
}

type literalNode string

func (n literalNode) render(b *strings.Builder, _ Values) error {
	b.WriteString(string(n))
	return nil
}

type slotNode struct {
	name string
}

func (n slotNode) render(b *strings.Builder, values Values) error {
	value, ok := values.Slots[n.name]
	if !ok {
		return fmt.Errorf("%w: slot %q", ErrMissingSlot, n.name)
	}
	b.WriteString(html.EscapeString(value))
	return nil
}

type blockNode struct {
	name     string
	children []node
}

func (n blockNode) render(b *strings.Builder, values Values) error {
	show, ok := values.Blocks[n.name]
	if !ok {
		return fmt.Errorf("%w: block %q", ErrMissingSlot, n.name)
	}
	if !show {
		return nil
	}
	return renderNodes(b, n.children, values)
}

func renderNodes(b *strings.Builder, nodes []node, values Values) error {
	for _, n := range nodes {
		if err := n.render(b, values); err != nil {
			return err
		}
	}
	return nil
}
