// Package log is a small structured logger with a loose, variadic call
// surface: each leveled call accepts any mix of message fragments, context
// objects and error values, and produces exactly one JSON line on the
// severity-appropriate output stream.
//
// Key features
//   - Argument classification: strings and other primitives become the
//     message, maps/structs/slices are shallow-merged into the entry as
//     fields, and error-like values (Go errors or anything exposing a name
//     and a message) are normalized into a canonical error shape
//   - Severity routing via an injectable sink per level; debug and trace
//     share one default sink
//   - Error history enrichment: wrapped Go errors carry their full cause
//     chain (outermost -> root) and the root cause string
//   - Optional rotating-file output via lumberjack, validated configuration
//   - Fully synchronous: a call returns only after its line is written
//
// Typical usage
//
//	logger := log.New(log.LevelInfo)
//	logger.Info("user action", map[string]any{"user_id": 123, "action": "login"})
//	logger.Error("query failed", err, map[string]any{"table": "users"})
//
//	if err := logger.SetLevel("debug"); err != nil { ... } // *InvalidLevelError
//
// Context objects must be acyclic and JSON-serializable; cyclic values
// degrade to zerolog's marshaling placeholder instead of a useful field.
package log
