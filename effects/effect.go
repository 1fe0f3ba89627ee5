package effects

import (
	"context"
	"fmt"

	"github.com/on-the-ground/monads_in_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
	"github.com/on-the-ground/monads_in_go/shared/helper"
	"go.uber.org/zap"
)

var (
	// ErrNoEffectHandler is the panic value when an effect is performed without a handler.
	ErrNoEffectHandler = effectmodel.ErrNoEffectHandler
	// ErrHandlerClosed is returned when a handler went away before answering.
	ErrHandlerClosed = effectmodel.ErrHandlerClosed
)

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// Payloads are routed by an xxhash of PartitionKey(), so effects sharing a key are handled
// in order by the same worker.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	return register(ctx, enum, handler.EffectId, "resumable", handler.Close, handler)
}

// WithResumableEffectHandler registers a resumable effect handler served by a single worker.
// Effects are handled one at a time in the order they were performed.
func WithResumableEffectHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewResumableHandler(ctx, bufferSize, handleFn, td)
	return register(ctx, enum, handler.EffectId, "resumable", handler.Close, handler)
}

// PerformResumableEffect sends a payload to the resumable effect handler and returns the
// channel its result arrives on.
//
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P any, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := helper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// Await waits for the result of a resumable effect.
// A channel closed without a value yields ctx.Err(), or ErrHandlerClosed if ctx is still live.
func Await[R any](ctx context.Context, resultCh <-chan handlers.ResumableResult[R]) (R, error) {
	var zero R
	select {
	case res, ok := <-resultCh:
		if ok {
			return res.Value, res.Err
		}
	case <-ctx.Done():
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return zero, ErrHandlerClosed
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging, telemetry, or background publishing.
// This handler executes without returning a result.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, td)
	return register(ctx, enum, handler.EffectId, "fire/forget", handler.Close, handler)
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// The handler will process the payload asynchronously.
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := helper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

// register stores handler under enum and returns the teardown that closes it and hands
// back the context the handler was registered on.
func register(
	ctx context.Context,
	enum effectmodel.EffectEnum,
	effectId, kind string,
	closeFn func(),
	handler any,
) (context.Context, func() context.Context) {
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created effect handler",
		zap.String("kind", kind),
		zap.String("effectId", effectId),
		zap.String("enum", string(enum)),
	)

	return ctxWith, func() context.Context {
		closeFn()
		zap.L().Debug("closed effect handler",
			zap.String("kind", kind),
			zap.String("effectId", effectId),
			zap.String("enum", string(enum)),
		)
		return ctx
	}
}

// getHandler checks whether a handler for the given EffectEnum is registered in the context.
func getHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEffectHandler, enum)
	}
	return raw, nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
