// Package environment propagates the deployment environment (development,
// staging, production) through context.Context, HTTP requests and structured
// logs.
//
// It defines the typed string Environment with the constants Development,
// Staging and Production. Values attach to a context with WithContext, come
// back out with FromContext and answer the convenience predicates
// IsDevelopment, IsStaging and IsProduction, which also accept the short
// aliases "dev", "stage" and "prod".
//
// The email creation service keys dev-only behavior off these predicates:
// in development generated emails are written to disk and locally stored
// images are served by the API process itself.
//
// # Usage
//
// Import the package:
//
//	import "github.com/rishadfb/email-creation/pkg/environment"
//
// Stamp every API request:
//
//	handler := environment.Middleware(environment.Development)(router)
//
// Branch on the environment:
//
//	if environment.IsDevelopment(ctx) {
//	    // keep generated emails on disk instead of delivering them
//	}
//
// Annotate log records:
//
//	log := logger.New(
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// # Error Handling
//
// All helpers are allocation-free and never return errors. A missing value
// simply yields the zero value ("").
package environment
