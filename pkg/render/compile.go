package render

import (
	"fmt"
	"strings"
)

const (
	slotOpen  = "{{"
	slotClose = "}}"
	tagOpen   = "{%"
	tagClose  = "%}"
)

// Compile parses markup into a Template. The marker syntax is fixed:
// {{slot_name}} placeholders and {% if block_name %}...{% endif %}
// conditional wrappers, which may nest. Whitespace inside markers is
// ignored. Malformed, unterminated, or unbalanced markers return an
// error wrapping ErrInvalidMarkup.
func Compile(raw string) (*Template, error) {
	p := &parser{src: raw}
	nodes, err := p.parseNodes(false)
	if err != nil {
		return nil, err
	}

	t := &Template{nodes: nodes}
	collectMarkers(nodes, t, map[string]bool{}, map[string]bool{})
	return t, nil
}

type parser struct {
	src string
	pos int
}

// parseNodes consumes nodes until end of input, or until a matching
// {% endif %} when inBlock is set.
func (p *parser) parseNodes(inBlock bool) ([]node, error) {
	var nodes []node

	for p.pos < len(p.src) {
		next := p.nextMarker()
		if next < 0 {
			if inBlock {
				return nil, fmt.Errorf("%w: block not closed before end of input", ErrInvalidMarkup)
			}
			nodes = append(nodes, literalNode(p.src[p.pos:]))
			p.pos = len(p.src)
			return nodes, nil
		}

		if next > p.pos {
			nodes = append(nodes, literalNode(p.src[p.pos:next]))
			p.pos = next
		}

		if strings.HasPrefix(p.src[p.pos:], slotOpen) {
			n, err := p.parseSlot()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			continue
		}

		name, end, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		if end {
			if !inBlock {
				return nil, fmt.Errorf("%w: endif without matching if near line %d", ErrInvalidMarkup, p.line())
			}
			return nodes, nil
		}

		children, err := p.parseNodes(true)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, blockNode{name: name, children: children})
	}

	if inBlock {
		return nil, fmt.Errorf("%w: block not closed before end of input", ErrInvalidMarkup)
	}
	return nodes, nil
}

// nextMarker returns the offset of the nearest marker opener at or after
// the current position, or -1 when none remains.
func (p *parser) nextMarker() int {
	slot := strings.Index(p.src[p.pos:], slotOpen)
	tag := strings.Index(p.src[p.pos:], tagOpen)
	switch {
	case slot < 0 && tag < 0:
		return -1
	case slot < 0:
		return p.pos + tag
	case tag < 0:
		return p.pos + slot
	case slot < tag:
		return p.pos + slot
	default:
		return p.pos + tag
	}
}

// parseSlot consumes a {{name}} marker starting at the current position.
func (p *parser) parseSlot() (node, error) {
	line := p.line()
	rest := p.src[p.pos+len(slotOpen):]
	end := strings.Index(rest, slotClose)
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated slot marker at line %d", ErrInvalidMarkup, line)
	}

	name := strings.TrimSpace(rest[:end])
	if !isMarkerName(name) {
		return nil, fmt.Errorf("%w: bad slot name %q at line %d", ErrInvalidMarkup, name, line)
	}

	p.pos += len(slotOpen) + end + len(slotClose)
	return slotNode{name: name}, nil
}

// parseTag consumes a {% ... %} tag starting at the current position and
// returns the block name for an if tag, or end=true for endif.
func (p *parser) parseTag() (name string, end bool, err error) {
	line := p.line()
	rest := p.src[p.pos+len(tagOpen):]
	close := strings.Index(rest, tagClose)
	if close < 0 {
		return "", false, fmt.Errorf("%w: unterminated block tag at line %d", ErrInvalidMarkup, line)
	}

	p.pos += len(tagOpen) + close + len(tagClose)

	fields := strings.Fields(rest[:close])
	switch {
	case len(fields) == 1 && fields[0] == "endif":
		return "", true, nil
	case len(fields) == 2 && fields[0] == "if":
		if !isMarkerName(fields[1]) {
			return "", false, fmt.Errorf("%w: bad block name %q at line %d", ErrInvalidMarkup, fields[1], line)
		}
		return fields[1], false, nil
	default:
		return "", false, fmt.Errorf("%w: unsupported block tag %q at line %d", ErrInvalidMarkup, strings.TrimSpace(rest[:close]), line)
	}
}

func (p *parser) line() int {
	return strings.Count(p.src[:p.pos], "\n") + 1
}

// isMarkerName reports whether s is a valid marker identifier: letters,
// digits, and underscores, not starting with a digit.
func isMarkerName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// collectMarkers walks the node tree and records distinct slot and block
// names in first-appearance order.
func collectMarkers(nodes []node, t *Template, seenSlots, seenBlocks map[string]bool) {
	for _, n := range nodes {
		switch n := n.(type) {
		case slotNode:
			if !seenSlots[n.name] {
				seenSlots[n.name] = true
				t.slots = append(t.slots, n.name)
			}
		case blockNode:
			if !seenBlocks[n.name] {
				seenBlocks[n.name] = true
				t.blocks = append(t.blocks, n.name)
			}
			collectMarkers(n.children, t, seenSlots, seenBlocks)
		}
	}
}
