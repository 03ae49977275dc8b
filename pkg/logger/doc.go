// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors and injection of values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before every record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "formcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "conditions loaded",
//	    logger.Source(path),
//	    logger.Conditions(keys),
//	)
//
// # Configuration
//
//   - WithEnvironment - level and format defaults per environment.
//   - WithFormat / WithLevel - explicit overrides; ParseFormat and ParseLevel read them from strings.
//   - WithOutput - destination, stderr by default.
//   - WithAttr - static attributes.
//   - WithContextExtractors / WithContextValue - attributes pulled from context.
//
// Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
