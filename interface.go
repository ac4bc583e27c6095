package log

// Logger is the facade surface for dependency injection. Each leveled call
// accepts any mix of message fragments, context objects and error values and
// writes at most one line.
type Logger interface {
	Error(args ...any)
	Warn(args ...any)
	Info(args ...any)
	Debug(args ...any)
	Trace(args ...any)

	// Level reports the current threshold; SetLevel changes it and fails
	// with *InvalidLevelError on a name outside the severity scale.
	Level() string
	SetLevel(level string) error
}

var _ Logger = (*Service)(nil)
