package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (a *sharerApp) initLog() {
	a.initLogOnce.Do(func() {
		a.logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if a.logger != nil {
			// Set from outside, e.g. in tests
			return
		}
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		a.logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			a.logLevel,
		))
	})
}

func (a *sharerApp) updateLogLevel() {
	a.initLog()
	if a.cfg != nil && a.cfg.Debug {
		a.logLevel.SetLevel(zapcore.DebugLevel)
	}
}

func (a *sharerApp) debug(msg string, fields ...zap.Field) {
	a.initLog()
	a.logger.Debug(msg, fields...)
}

func (a *sharerApp) info(msg string, fields ...zap.Field) {
	a.initLog()
	a.logger.Info(msg, fields...)
}

func (a *sharerApp) error(msg string, fields ...zap.Field) {
	a.initLog()
	a.logger.Error(msg, fields...)
}

func (a *sharerApp) fatal(msg string, fields ...zap.Field) {
	a.initLog()
	a.error(msg, fields...)
	_ = a.logger.Sync()
	os.Exit(1)
}
