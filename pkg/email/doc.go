// Package email delivers pipeline-produced campaign emails through a
// provider-agnostic EmailSender interface, with built-in support for
// Postmark and a file-based development sender.
//
// # Architecture
//
// The package is built around the EmailSender interface, allowing
// different delivery backends to be swapped without changing
// application code. Currently supported:
//   - PostmarkClient for production delivery with open/click tracking
//   - DevSender for local development and CLI export (saves emails to disk)
//
// All implementations validate email parameters before sending.
//
// # Usage
//
// Delivering a pipeline result through Postmark:
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "campaigns@example.com",
//	    ReplyToEmail:         "hello@example.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	result, err := pipeline.CreateEmail(ctx, brief, contact)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendEmail(ctx, email.ParamsFromEmail(result))
//
// ParamsFromEmail maps the template category to the Postmark tag and
// attaches the template id as metadata, so provider analytics can be
// segmented per template.
//
// Development mode writes files instead of sending:
//
//	sender := email.NewDevSender("./out")
//	err := sender.SendEmail(ctx, params)
//	// Creates <timestamp>_<recipient>_<tag>.html and .json in ./out
//
// # Error Handling
//
// The package provides sentinel errors for common failure scenarios:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameter validation failed
//   - ErrFailedToSendEmail: delivery failed
//
// All errors can be checked with errors.Is.
package email
