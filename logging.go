package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snowtest/snow-contract-tests/framework"
)

// newLogger builds the runner's diagnostic logger, which writes to stderr so that it never
// mixes with the test report.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// debugLogger adapts a zap logger to the framework's Logger.
func debugLogger(logger *zap.Logger) framework.Logger {
	return framework.LoggerFunc(logger.Sugar().Debugf)
}
