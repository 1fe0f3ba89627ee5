package handlers

import (
	"context"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			NewSingleQueue(
				ctx,
				bufferSize,
				func(ctx context.Context, msg fireAndForgetEffectMessage[P]) {
					handleFn(ctx, msg.payload)
				},
			),
			cancelFn,
			teardown,
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[fireAndForgetEffectMessage[P]]
}

// FireAndForgetEffect queues payload and returns without waiting for it to be handled.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	defer func() {
		if r := recover(); r != nil {
			logClosedSend(ffh.EffectId, payload, r)
		}
	}()

	if ctx.Err() != nil {
		return
	}

	msg := fireAndForgetEffectMessage[P]{payload: payload}
	select {
	case <-ctx.Done():
	case ffh.dispatcher.GetChannelOf(msg) <- msg:
	}
}

type fireAndForgetEffectMessage[P any] struct {
	payload P
}
