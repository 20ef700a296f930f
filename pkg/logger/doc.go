// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors so keys stay consistent across the web client.
//
// JSON output uses slog.JSONHandler. Text output, used in development, is
// rendered by github.com/charmbracelet/log. Both are wrapped in
// ContextHandler, which runs registered ContextExtractor callbacks on
// every record so request-scoped values such as the request id are attached
// automatically.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "alert enqueued", logger.AlertID(id))
package logger
