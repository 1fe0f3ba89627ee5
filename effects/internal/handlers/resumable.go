package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
)

func NewResumableHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			NewSingleQueue(ctx, bufferSize, resume(handleFn)),
			cancelFn,
			teardown,
		),
	}
}

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, resume(handleFn)),
			cancelFn,
			teardown,
		),
	}
}

// resume adapts handleFn so its result is sent back on the message's resume channel.
func resume[P any, R any](
	handleFn func(context.Context, P) (R, error),
) func(context.Context, ResumableEffectMessage[P, R]) {
	return func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
		defer close(msg.ResumeCh)
		// ResumeCh has room for exactly this one result
		msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload))
	}
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect queues payload and returns the channel its result will arrive on.
// The channel is closed without a value if the handler is gone or ctx ends first.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) (resumeCh <-chan ResumableResult[R]) {
	// buffered so the worker never blocks on a performer that stopped listening
	ch := make(chan ResumableResult[R], 1)
	resumeCh = ch

	defer func() {
		if r := recover(); r != nil {
			logClosedSend(rh.EffectId, payload, r)
			close(ch)
		}
	}()

	if ctx.Err() != nil {
		close(ch)
		return resumeCh
	}

	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: ch,
	}
	select {
	case <-ctx.Done():
		close(ch)
	case rh.dispatcher.GetChannelOf(msg) <- msg:
	}

	return resumeCh
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
