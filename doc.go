// Package emailcreation turns a campaign brief and a contact list into
// personalized, ready-to-send HTML emails.
//
// The pipeline runs three stages per contact:
//
//  1. Content generation: a language model picks the best template from
//     the catalog and writes subject, preheader, and per-slot copy
//     tailored to the contact (pkg/contentgen).
//  2. Image resolution: prompts attached to the content become real
//     images through an image model, stored or inlined, with a
//     placeholder fallback so no email is lost to a missing picture
//     (pkg/imagegen).
//  3. Rendering: the chosen template's markers are replaced with
//     HTML-escaped values, producing the final document (pkg/render).
//
// Each run is stateless: the pipeline holds only its wiring, and the
// same inputs and template catalog always produce the same render.
//
// # Usage
//
//	cat, err := catalog.Load(templates.FS)
//	if err != nil {
//		return err
//	}
//
//	client, err := gemini.New(gemini.Config{APIKey: apiKey})
//	if err != nil {
//		return err
//	}
//
//	generator, err := contentgen.New(client)
//	if err != nil {
//		return err
//	}
//
//	pipeline, err := emailcreation.New(cat, generator,
//		imagegen.New(imagegen.WithProvider(client)),
//		emailcreation.WithConcurrency(8),
//	)
//	if err != nil {
//		return err
//	}
//
//	email, err := pipeline.CreateEmail(ctx, "Welcome our new beta users", contact)
//
// Batches fan out over a bounded worker group and isolate failures
// per contact:
//
//	results := pipeline.CreateBatch(ctx, brief, contacts)
//	for _, r := range results {
//		if r.Err != nil {
//			log.Error("skipped contact", "email", r.Contact.Email, "error", r.Err)
//			continue
//		}
//		send(r.Email)
//	}
//
// # Error Handling
//
// CreateEmail fails only on content generation errors, an unknown
// template id, or a render-time inconsistency; image problems degrade
// the affected slot and surface on Email.ImageFailures instead. See
// pkg/contentgen and pkg/render for the underlying sentinel errors.
package emailcreation
