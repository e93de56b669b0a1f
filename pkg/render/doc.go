// Package render compiles email template markup into an immutable node
// tree and renders it with generated content. It is the final injection
// stage of the email creation pipeline.
//
// The marker syntax is deliberately fixed and minimal:
//
//   - {{slot_name}} inserts an HTML-escaped value
//   - {% if block_name %} ... {% endif %} includes the wrapped fragment
//     only when the block's boolean is true; blocks may nest
//
// Slot and block names are separate namespaces, so a block may carry the
// same name as a slot it wraps.
//
// # Usage
//
//	tmpl, err := render.Compile(rawMarkup)
//	if err != nil {
//	    // markup is broken, reject the template at load time
//	}
//
//	out, err := tmpl.Render(render.Values{
//	    Slots:  map[string]string{"headline": "Welcome, Maria"},
//	    Blocks: map[string]bool{"cta_button": true},
//	})
//
// Rendering is pure: no I/O, no clock, and byte-identical output for
// identical inputs. Because output is produced by walking the compiled
// tree, marker syntax can never leak into the result; a template either
// renders completely or fails with ErrMissingSlot.
//
// # Error Handling
//
//	  - ErrInvalidMarkup – malformed, unterminated, or unbalanced markers
//	    found at compile time
//	  - ErrMissingSlot   – a slot without a value, or a block without a
//	    boolean, at render time; this indicates a bug in the caller's
//	    value assembly, not bad input data
package render
