package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
	verbose bool
}

// Quiet keeps errors only.
func NewLogger(quiet bool) (*Logger, error) {
	level := zap.DebugLevel
	if quiet {
		level = zap.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger:  zl,
		verbose: !quiet,
	}, nil
}

func (l *Logger) StdLog() *log.Logger {
	std, err := zap.NewStdLogAt(l.Logger, zap.DebugLevel)
	if err != nil {
		return zap.NewStdLog(l.Logger)
	}
	return std
}
