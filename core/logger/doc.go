// Package logger provides structured logging utilities built on Go's standard slog package:
// a small factory for configured loggers and a set of attribute helpers used across
// the dispatch code so that log records share consistent keys.
//
// # Creating Loggers
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("notifier"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("notifier"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Loggers can also be configured from the environment:
//
//	var cfg logger.Config // LOG_LEVEL, LOG_FORMAT, LOG_SERVICE
//	config.MustLoad(&cfg)
//	log, err := logger.FromConfig(cfg, os.Stdout)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so they can be used without nil checks:
//
//	log.Error("observer failed",
//		logger.Error(err),
//		logger.Event(evt.Type().Name()),
//		logger.EventID(evt.ID()),
//		logger.Observer("audit"),
//	)
package logger
