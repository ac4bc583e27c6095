package log

import "github.com/rs/zerolog"

// Levels lists the five severity names ordered by rank, most severe first.
// A call is emitted iff the rank of its level is less than or equal to the
// rank of the logger's current threshold.
var Levels = []string{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

var levelRanks = map[string]int{
	LevelError: 0,
	LevelWarn:  1,
	LevelInfo:  2,
	LevelDebug: 3,
	LevelTrace: 4,
}

// Rank returns the priority rank of a severity name (0 is most severe) and
// whether the name is a member of the severity scale.
func Rank(level string) (int, bool) {
	r, ok := levelRanks[level]
	return r, ok
}

// IsValidLevel reports whether value is a string naming one of the five
// severities. Non-string input is always false; matching is case-sensitive
// with no trimming. Useful for checking configuration-sourced values before
// constructing or reconfiguring a logger.
func IsValidLevel(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, ok = levelRanks[s]
	return ok
}

// InvalidLevelError reports a SetLevel call with a string that is not one of
// the five severity names.
type InvalidLevelError struct {
	// Level is the offending value.
	Level string
}

func (e *InvalidLevelError) Error() string {
	return "Invalid log level: " + e.Level
}

// zerologLevel maps a severity name to its zerolog counterpart. The caller
// must have validated the name via Rank.
func zerologLevel(level string) zerolog.Level {
	switch level {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}
