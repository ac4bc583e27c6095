package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithConfig_Console(t *testing.T) {
	l, err := NewWithConfig(Config{Level: "debug", ConsoleLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	assert.Equal(t, "debug", l.Level())
}

func TestNewWithConfig_DefaultsToConsole(t *testing.T) {
	l, err := NewWithConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, l.Level())
}

func TestNewWithConfig_InvalidLevelFallsBack(t *testing.T) {
	l, err := NewWithConfig(Config{Level: "verbose", ConsoleLogging: true})
	require.NoError(t, err, "construction never fails on a bad level")
	assert.Equal(t, DefaultLevel, l.Level())
}

func TestNewWithConfig_BothChannelsRejected(t *testing.T) {
	_, err := NewWithConfig(Config{
		ConsoleLogging: true,
		FileLogging:    true,
		LogFileDir:     t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestNewWithConfig_FileLoggingRequiresDir(t *testing.T) {
	_, err := NewWithConfig(Config{FileLogging: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgConfigInvalid)
}

func TestNewWithConfig_NegativeRotationRejected(t *testing.T) {
	_, err := NewWithConfig(Config{
		FileLogging:      true,
		LogFileDir:       t.TempDir(),
		LogFileMaxSizeMB: -1,
	})
	require.Error(t, err)
}

func TestFileLoggingWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := NewWithConfig(Config{
		Level:             "debug",
		FileLogging:       true,
		LogFileDir:        dir,
		LogFileName:       "service.log",
		LogFileMaxBackups: 1,
		LogFileMaxAgeDays: 1,
		LogFileMaxSizeMB:  5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	l.Info("hello file", map[string]any{"user_id": 7})
	l.Error("bad thing")
	l.Trace("gated out")

	content, err := os.ReadFile(filepath.Join(dir, "service.log"))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "hello file")
	assert.Contains(t, text, `"user_id":7`)
	assert.Contains(t, text, "bad thing")
	assert.NotContains(t, text, "gated out")
}

func TestCloseIsIdempotent(t *testing.T) {
	l, err := NewWithConfig(Config{
		FileLogging: true,
		LogFileDir:  t.TempDir(),
	})
	require.NoError(t, err)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}
