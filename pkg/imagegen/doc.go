// Package imagegen resolves the image slots of an email template to
// usable URLs, generating pictures from the content's image prompts.
//
// Resolution is total: an email is never lost to a missing picture.
// Every declared image slot ends up with a URL, in order of
// preference a stored public URL, an inline data URI, or the fallback
// placeholder. Degradations are reported as campaign.SlotFailures on
// the resolved content so callers can surface them without failing.
//
// # Usage
//
//	resolver := imagegen.New(
//		imagegen.WithProvider(geminiClient),
//		imagegen.WithStorage(storage),
//	)
//
//	resolved := resolver.Resolve(ctx, content, descriptor)
//	for _, f := range resolved.Failures {
//		log.Warn("degraded image slot", "slot", f.Slot, "reason", f.Reason)
//	}
//
// Resolve never returns an error. Slots whose prompts generate
// successfully are uploaded through assets.Storage when one is
// configured; without storage the bytes are embedded directly into the
// HTML as a base64 data URI, which keeps single-binary deployments
// free of an object store.
package imagegen
