// Package logger builds *slog.Logger values with functional options and
// injects attributes stored in context.Context into every record.
//
// New selects a text or JSON handler, attaches static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on each Handle call. Helper constructors in attr.go keep attribute
// keys consistent across packages (component, event, field, target, theme,
// notification_id).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "uikit"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "theme toggled",
//	    logger.Component("theme"),
//	    logger.Theme("dark"),
//	)
//
// Error and Errors return empty attributes for nil errors, so they can be
// passed unconditionally.
package logger
