package log

import (
	"github.com/pkg/errors"
)

// Config drives NewWithConfig. Exactly one output channel applies: console
// (the default when neither flag is set) or a rotating log file. The Level
// field deliberately skips validation so a bad configuration value degrades
// to DefaultLevel instead of failing startup.
type Config struct {
	Level          string
	ConsoleLogging bool
	FileLogging    bool

	LogFileDir        string `validate:"required_if=FileLogging true"`
	LogFileName       string
	LogFileMaxBackups int `validate:"gte=0"`
	LogFileMaxAgeDays int `validate:"gte=0"`
	LogFileMaxSizeMB  int `validate:"gte=0"`
}

// NewWithConfig creates a logger from a validated configuration. The only
// failure modes are configuration problems; an invalid Level is not one of
// them and silently falls back to DefaultLevel.
func NewWithConfig(cfg Config) (*Service, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if cfg.ConsoleLogging && cfg.FileLogging {
		return nil, errors.New(errMsgBothChannels)
	}

	if !cfg.FileLogging {
		return New(cfg.Level), nil
	}

	fw, err := initializeRollingFileWriter(&cfg)
	if err != nil {
		return nil, err
	}
	s := NewWithSinks(cfg.Level, fileSinks(fw))
	s.fileWriter = fw
	return s, nil
}
