// Package log builds [log/slog] handlers from command-line flags.
//
// Supported formats are [FormatJSON], [FormatLogfmt], [FormatText] (rendered
// with charm log) and [FormatAuto], which picks text output on a terminal and
// logfmt elsewhere. Levels are [LevelError], [LevelWarn], [LevelInfo] and
// [LevelDebug].
//
// Typical usage:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
package log
