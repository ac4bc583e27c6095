package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sinks maps each severity to its destination stream. Debug and trace share
// the Default sink. Inject buffers here in tests to capture emitted lines
// without touching the process streams.
type Sinks struct {
	Error   io.Writer
	Warn    io.Writer
	Info    io.Writer
	Default io.Writer
}

// consoleSinks mirrors the console semantics of the severities: errors and
// warnings on stderr, informational and diagnostic output on stdout.
func consoleSinks() Sinks {
	return Sinks{
		Error:   os.Stderr,
		Warn:    os.Stderr,
		Info:    os.Stdout,
		Default: os.Stdout,
	}
}

// fileSinks routes every severity to the one rotating destination.
func fileSinks(w io.Writer) Sinks {
	return Sinks{Error: w, Warn: w, Info: w, Default: w}
}

// levelRouter implements zerolog.LevelWriter so that zerolog hands every
// serialized line straight to the sink for its severity. One call, one
// write; there is no buffering across calls.
type levelRouter struct {
	sinks Sinks
}

var _ zerolog.LevelWriter = (*levelRouter)(nil)

func newLevelRouter(sinks Sinks) *levelRouter {
	fallback := consoleSinks()
	if sinks.Error == nil {
		sinks.Error = fallback.Error
	}
	if sinks.Warn == nil {
		sinks.Warn = fallback.Warn
	}
	if sinks.Info == nil {
		sinks.Info = fallback.Info
	}
	if sinks.Default == nil {
		sinks.Default = fallback.Default
	}
	return &levelRouter{sinks: sinks}
}

func (r *levelRouter) Write(p []byte) (int, error) {
	return r.sinks.Default.Write(p)
}

func (r *levelRouter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	switch level {
	case zerolog.ErrorLevel:
		return r.sinks.Error.Write(p)
	case zerolog.WarnLevel:
		return r.sinks.Warn.Write(p)
	case zerolog.InfoLevel:
		return r.sinks.Info.Write(p)
	default:
		return r.sinks.Default.Write(p)
	}
}
