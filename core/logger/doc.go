// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the one-shot sync command (console
// output by default) and the long-running service mode (json for log shippers).
//
// # Context Awareness
//
// In service mode every request carries a RayID. WithRayID extracts it from the Fiber context
// and attaches it to the log entry, so all logs of one triggered run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Collection synced", zap.String("collection", name))
package logger
