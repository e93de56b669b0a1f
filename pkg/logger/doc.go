// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, default attributes
// applied to every record, and ContextExtractor callbacks that pull
// attributes out of the context on every log call.
//
// # Architecture
//
// New picks the concrete slog.Handler (slog.NewTextHandler or
// slog.NewJSONHandler) from the configured Format, attaches any static
// attributes, then wraps the handler so the registered ContextExtractor
// callbacks run on every record before delegating.
//
// Helper constructors in attr.go keep attribute keys consistent across the
// pipeline: TemplateID, ContactEmail, Slot and Attempt match the keys the
// generation packages emit, so app-level and library-level records line up
// in aggregation queries.
//
// # Usage
//
//	import "github.com/rishadfb/email-creation/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(cfg.Env, "email-creation"),
//	        logger.WithContextExtractors(environment.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("batch finished",
//	        logger.Component("pipeline"),
//	        logger.Count(len(results)),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithDevelopment / WithStaging / WithProduction: per-environment defaults.
//   - WithEnvironment: pick the above from an environment name.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: set a custom slog.Level.
//   - WithAttr: attach static attributes.
//   - WithContextExtractors / WithContextValue: inject attributes from context.
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error is
// non-nil, allowing calls like:
//
//	log.Info("email created", logger.Error(err))
//
// without an additional nil check.
package logger
