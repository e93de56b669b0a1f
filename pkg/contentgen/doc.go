// Package contentgen turns a campaign brief, a contact profile, and the
// catalog's candidate templates into schema-valid generated content via
// a single model call per attempt. The model selects the template and
// writes the copy in one response; this package enforces structural
// conformance and nothing else.
//
// Validation is strict: the chosen template_id must be a candidate,
// subject and preheader must be non-empty, every required slot of the
// chosen template needs non-empty text, and every conditional block
// needs an explicit boolean. Output that violates the schema triggers a
// corrective retry (up to two) with the violated constraints appended
// to the prompt. Unknown keys are dropped silently, never rejected.
//
// # Usage
//
//	gen, err := contentgen.New(geminiClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	content, err := gen.Generate(ctx, brief, contact, cat.List())
//	if errors.Is(err, contentgen.ErrGenerationFailed) {
//	    // per-contact failure, the batch moves on
//	}
//
// Missing contact attributes are presented to the model as "unknown"
// so it personalizes on what is known instead of fabricating details.
package contentgen
