package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a configuration string to a LogLevel, defaulting to LogInfo.
func ParseLevel(s string) LogLevel {
	switch l := LogLevel(s); l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return l
	default:
		return LogInfo
	}
}

// ZapLevel converts a LogLevel into the zapcore level used to build loggers.
func (l LogLevel) ZapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return WithZapEffectHandler(
		ctx,
		1,
		zap.New(consoleCore),
	)
}
