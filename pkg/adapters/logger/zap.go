package logger

import (
	"github.com/ideamans/go-l10n"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/chronocam/pkg/ports"
)

// ZapLogger writes structured JSON lines through zap.
// Messages are translated the same way as the console logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap creates a production zap logger at the given level.
func NewZap(level ports.LogLevel) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: l.Sugar()}, nil
}

// NewZapFrom wraps an existing zap logger.
func NewZapFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debug(l10n.F(msg, args...))
}

// Info logs an informational message.
func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Info(l10n.F(msg, args...))
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.sugar.Warn(l10n.F(msg, args...))
}

// Error logs an error message.
func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Error(l10n.F(msg, args...))
}

// WithComponent returns a logger carrying a "component" field.
func (l *ZapLogger) WithComponent(component string) ports.Logger {
	return &ZapLogger{sugar: l.sugar.With("component", component)}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// zapLevel maps a LogLevel to zap. LevelQuiet maps above fatal so nothing is written.
func zapLevel(level ports.LogLevel) zapcore.Level {
	switch level {
	case ports.LevelDebug:
		return zapcore.DebugLevel
	case ports.LevelWarn:
		return zapcore.WarnLevel
	case ports.LevelError:
		return zapcore.ErrorLevel
	case ports.LevelQuiet:
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}
