package log

import (
	stderrs "errors"
	"io"
	"testing"
)

func newDiscardLogger(level string) *Service {
	return NewWithSinks(level, Sinks{
		Error:   io.Discard,
		Warn:    io.Discard,
		Info:    io.Discard,
		Default: io.Discard,
	})
}

func BenchmarkGatedCall(b *testing.B) {
	l := newDiscardLogger("error")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("hidden", map[string]any{"k": "v"})
	}
}

func BenchmarkMessageOnly(b *testing.B) {
	l := newDiscardLogger("info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("user processed")
	}
}

func BenchmarkWithContext(b *testing.B) {
	l := newDiscardLogger("info")
	ctx := map[string]any{"user_id": 123, "action": "login"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("user action", ctx)
	}
}

func BenchmarkWithError(b *testing.B) {
	l := newDiscardLogger("error")
	err := stderrs.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Error("query failed", err)
	}
}

func BenchmarkClassify(b *testing.B) {
	args := []any{"mixed", map[string]any{"k": 1}, 42, stderrs.New("e")}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = classify(args)
	}
}
