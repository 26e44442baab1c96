// Package logging configures the structured loggers used by the cuid
// generators and command line.
//
// Loggers are plain *slog.Logger values. Generators accept one through an
// option and default to Nop, so library callers see no output unless they
// opt in:
//
//	log := logging.New(logging.Config{Level: logging.LevelDebug})
//	gen, err := cuid.NewV2Generator(cuid.WithLogger(log))
//
// Generators only log when host identity is unavailable (warn) and when a
// new generator scope is created (debug).
package logging
