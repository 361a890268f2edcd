// Package logger builds the application's *slog.Logger.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the handler with NewContextHandler, which runs ContextExtractor
// callbacks on every record. The server registers extractors for the request
// ID and client IP so handlers only pass ctx:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "eventify"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "Form validated", logger.Form("register"))
//
// attr.go holds constructors for the attribute keys used across the code base.
package logger
