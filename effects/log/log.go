package log

import (
	"context"

	"github.com/on-the-ground/monads_in_go/effects"
	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for logging effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapEffectHandler registers a fire-and-forget log effect handler using zap.Logger.
// Records below the logger's level are dropped before their fields are built.
// The teardown syncs the logger after every queued record has been written.
// The context returned by the teardown function should be used for further operations.
func WithZapEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return effects.WithFireAndForgetEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectLog,
		func(ctx context.Context, payload LogPayload) {
			ce := logger.Check(payload.Level.ZapLevel(), payload.Message)
			if ce == nil {
				return
			}
			fields := make([]zap.Field, 0, len(payload.Fields))
			for k, v := range payload.Fields {
				fields = append(fields, zap.Any(k, v))
			}
			ce.Write(fields...)
		},
		func() {
			// syncing stdout/stderr fails on some terminals; nothing to do about it here
			_ = logger.Sync()
		},
	)
}

// LogEff performs a fire-and-forget log effect using the EffectLog handler in the context.
// This should be used to emit structured logs within an effect-managed execution scope.
func LogEff(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	effects.FireAndForgetEffect(ctx, effectmodel.EffectLog, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

// Replay emits a derivation history, such as loggable.Value.Log(), one record per entry.
// Each record carries the shared fields plus "step" (1-based position in the history).
func Replay(ctx context.Context, level LogLevel, history []string, fields map[string]interface{}) {
	for i, entry := range history {
		stepFields := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			stepFields[k] = v
		}
		stepFields["step"] = i + 1
		LogEff(ctx, level, entry, stepFields)
	}
}
