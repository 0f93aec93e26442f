package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger returns a debug-level console logger writing to stdout.
// Used by tests and by the demo when debug output is requested.
func NewTestLogger() *zap.Logger {
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(
		consoleEncoder,
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	))
}

// New returns the console debug logger when debug is set and a production logger otherwise.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return NewTestLogger(), nil
	}
	return zap.NewProduction()
}

// Sync flushes logger and reports a failure through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
