package log

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is the logger facade. Its only mutable state is the current
// severity threshold; everything else is fixed at construction. All calls
// are fully synchronous: a leveled call returns only after its line has been
// written to the sink (or after being gated out).
//
// The zero value is a safe no-op logger; use New or NewWithConfig for one
// that writes.
type Service struct {
	threshold  atomic.Int32
	logger     atomic.Pointer[zerolog.Logger]
	fileWriter *lumberjack.Logger
}

// New creates a logger writing to the console streams. An invalid or empty
// initialLevel silently falls back to DefaultLevel; construction never
// fails. Level changes after construction go through SetLevel, which does
// surface invalid input.
func New(initialLevel string) *Service {
	return NewWithSinks(initialLevel, consoleSinks())
}

// NewWithSinks creates a logger routing each severity to the given sinks.
// Nil sink fields fall back to the console streams.
func NewWithSinks(initialLevel string, sinks Sinks) *Service {
	s := &Service{}
	s.threshold.Store(int32(initialRank(initialLevel)))

	// The internal zerolog logger stays wide open; gating belongs to the
	// facade so the level registry remains the single source of truth.
	logger := zerolog.New(newLevelRouter(sinks)).Level(zerolog.TraceLevel)
	s.logger.Store(&logger)
	return s
}

func initialRank(level string) int {
	if r, ok := Rank(level); ok {
		return r
	}
	r, _ := Rank(DefaultLevel)
	return r
}

// Level returns the name of the current severity threshold.
func (s *Service) Level() string {
	return Levels[s.threshold.Load()]
}

// SetLevel changes the severity threshold. An invalid name fails with an
// *InvalidLevelError carrying the offending value and leaves the prior
// threshold unchanged.
func (s *Service) SetLevel(level string) error {
	r, ok := Rank(level)
	if !ok {
		return &InvalidLevelError{Level: level}
	}
	s.threshold.Store(int32(r))
	return nil
}

// Error logs at error severity.
func (s *Service) Error(args ...any) { s.log(LevelError, args) }

// Warn logs at warn severity.
func (s *Service) Warn(args ...any) { s.log(LevelWarn, args) }

// Info logs at info severity.
func (s *Service) Info(args ...any) { s.log(LevelInfo, args) }

// Debug logs at debug severity.
func (s *Service) Debug(args ...any) { s.log(LevelDebug, args) }

// Trace logs at trace severity.
func (s *Service) Trace(args ...any) { s.log(LevelTrace, args) }

// log gates the call and, when it passes, runs the full pipeline:
// classification, normalization, entry construction, emission. Equal rank
// logs; strictly greater rank is skipped before any downstream work.
func (s *Service) log(level string, args []any) {
	if s == nil {
		return
	}
	r, ok := Rank(level)
	if !ok || int32(r) > s.threshold.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}

	// The entry carries the instant the call started processing, not the
	// instant of emission.
	ts := time.Now()
	writeEntry(logger, level, ts, classify(args))
}

// Close releases the rotating file writer when one exists. It is safe to
// call multiple times; there are never in-flight logs to wait for because
// every call writes synchronously before returning.
func (s *Service) Close() error {
	if s == nil || s.fileWriter == nil {
		return nil
	}
	return s.fileWriter.Close()
}
