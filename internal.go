package log

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

func initializeRollingFileWriter(cfg *Config) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(cfg.LogFileDir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, errMsgCreateLogDir)
	}

	name := cfg.LogFileName
	if name == emptyString {
		name = "app.log"
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogFileDir, name),
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAge:     cfg.LogFileMaxAgeDays,
		MaxSize:    cfg.LogFileMaxSizeMB,
	}, nil
}
