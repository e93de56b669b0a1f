// Package gemini implements a REST client for the Google Generative
// Language API: text generation through the generateContent endpoint
// and image generation through the Imagen predict endpoint. It is the
// production provider behind the content generation and image
// resolution stages.
//
// # Usage
//
//	client, err := gemini.New(gemini.Config{APIKey: os.Getenv("GEMINI_API_KEY")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := client.GenerateContent(ctx, prompt)
//
//	imageData, mimeType, err := client.GenerateImage(ctx, "a calm office scene")
//
// Rate limits (429) and server-side failures (5xx) are retried with
// fibonacci backoff before an error is returned; other API errors are
// terminal. Cancel the context to abort a call including its retries.
//
// # Error Handling
//
//	if errors.Is(err, gemini.ErrRateLimited) { ... }
//	if errors.Is(err, gemini.ErrEmptyResponse) { ... } // safety block or empty output
package gemini
