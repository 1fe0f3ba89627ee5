package handlers

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// effectScope owns the workers of one registered handler.
//
// A scope belongs to the goroutine that registered it: Close must be called once, by
// that owner, after every performer has returned.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

func (es *effectScope[T]) Close() {
	if !es.closed {
		es.closeFn()
		es.closed = true
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	}
}

// newEffectScope wires the shutdown order: stop and drain the workers, run the
// handler's teardown, then release the scope's context.
func newEffectScope[T any](
	dispatcher WorkerDispatcher[T],
	cancelFn context.CancelFunc,
	teardown func(),
) *effectScope[T] {
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		closeFn: func() {
			dispatcher.Stop()
			teardown()
			cancelFn()
		},
		closed: false,
	}
}

// logClosedSend reports a send on a closed effect channel recovered by a performer.
func logClosedSend(effectId string, payload any, r any) {
	zap.L().Warn("effect sent after its handler was closed",
		zap.String("effectId", effectId),
		zap.Any("payload", payload),
		zap.Any("panic", r),
	)
}
