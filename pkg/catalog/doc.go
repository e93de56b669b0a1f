// Package catalog loads and serves the email template catalog: a YAML
// manifest describing each template plus the HTML markup files it
// references. The catalog is loaded once at process start and is
// immutable afterwards, so reads need no synchronization.
//
// Each template is cross-validated at load time: its markup must
// compile, and the slot and block markers found in the markup must
// exactly match the sets declared in the manifest. A template that
// fails validation is logged and skipped without affecting the rest of
// the catalog; deploying one broken template never takes down the
// others. A catalog with zero loadable templates refuses to load.
//
// # Usage
//
//	c, err := catalog.Load(templates.FS, catalog.WithLogger(log))
//	if err != nil {
//	    // manifest unreadable or no template survived validation
//	}
//
//	for _, d := range c.List() {
//	    fmt.Println(d.ID, d.Category, d.Description)
//	}
//
//	tmpl, err := c.Template("welcome_email")
//	if errors.Is(err, catalog.ErrTemplateNotFound) {
//	    // unknown id, likely from stale generated content
//	}
//
// Slot names ending in _IMAGE mark image slots, slots listed under
// defaults carry static values, and subject, preheader, and year are
// filled by the pipeline. Descriptor.RequiredSlots returns what remains:
// the slots the model must write copy for.
package catalog
