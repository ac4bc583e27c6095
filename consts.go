package log

// The five severity names, most severe first. Matching is exact and
// case-sensitive everywhere; there are no aliases.
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// DefaultLevel is the threshold used when construction receives an invalid
// or absent level.
const DefaultLevel = LevelWarn

const (
	timestampFieldName  = "timestamp"
	errorFieldName      = "error"
	errorCountFieldName = "error_count"
	errorsFieldName     = "errors"

	// Millisecond-precision ISO-8601, always UTC.
	timestampFormat = "2006-01-02T15:04:05.000Z07:00"

	emptyString = ""
)

const (
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgBothChannels  = "Console and file logging are mutually exclusive."
	errMsgCreateLogDir  = "Failed to create log file directory."
)
