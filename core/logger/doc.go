// Package logger provides a structured logging facility based on Zap.
//
// All components of the tracker receive an injected *zap.Logger rather than
// relying on process-wide state, so the core reconciliation logic stays
// testable without capturing process output.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development/CLI)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("tracker started")
package logger
