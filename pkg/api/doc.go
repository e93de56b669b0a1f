// Package api exposes the email creation pipeline over HTTP.
//
// The router serves four endpoints, normally mounted under /api:
//
//	POST /emails/preview   one personalized email, returned inline
//	POST /emails/batch     one email per contact, capped per request
//	GET  /templates        the template catalog, filterable by category
//	GET  /templates/{id}   one descriptor with its raw markup
//
// Every response uses the same JSON envelope: data and meta on success,
// error with a stable code on failure. Validation problems come back as
// 422 with per-field details; a template the model's output references
// but the catalog lacks is a 404; provider exhaustion surfaces as 502.
//
// # Usage
//
//	router, err := api.NewRouter(api.Deps{
//		Creator: pipeline,
//		Catalog: cat,
//		Logger:  log,
//	})
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	r.Mount("/api", router)
//
// Batch creation never aborts the whole request: each contact's outcome
// is reported independently in the response body, mirroring the
// pipeline's per-contact isolation.
package api
