package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/monads_in_go/effects"
	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
)

// ErrKeyNotFound is returned when no scope, local or upper, binds the key.
var ErrKeyNotFound = errors.New("key not found")

// Payload is the key looked up by the Binding effect.
type Payload string

func (bp Payload) PartitionKey() string {
	return string(bp)
}

// WithEffectHandler registers a resumable, partitionable effect handler for bindings.
//
//   - Accepts a key-value map used for lookups; a nil map binds nothing.
//   - Falls back to the binding handler of an upper scope if a key is not found locally.
//   - Returns a teardown function that closes the handler and hands back the upper context.
func WithEffectHandler(
	ctx context.Context,
	bufferSize, numWorkers int,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	bindingHandler := &bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler[Payload, any](
		ctx,
		effectmodel.NewEffectScopeConfig(bufferSize, numWorkers),
		effectmodel.EffectBinding,
		bindingHandler.handle,
	)
}

// Effect performs a key-based lookup using the Binding effect handler.
//
// Returns either the value found or an error if the key is not found and no upper scope provides it.
func Effect(ctx context.Context, key string) (any, error) {
	return effects.Await(ctx, effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key)))
}

// normalizeBindingMap copies bm so later changes by the caller are not observed.
func normalizeBindingMap(bm map[string]any) map[string]any {
	out := make(map[string]any, len(bm))
	for k, v := range bm {
		out[k] = v
	}
	return out
}

// delegateBindingEffect asks the handler of an upper scope, if there is one.
func delegateBindingEffect(upperCtx context.Context, key string) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok && errors.Is(rErr, effects.ErrNoEffectHandler) {
				res = nil
				err = fmt.Errorf("%w: %s", ErrKeyNotFound, key)
				return
			}
			panic(r)
		}
	}()

	return Effect(upperCtx, key)
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle looks up the key in the local bindingMap.
// - If found: returns the value.
// - If not found: attempts to delegate the effect to an upper handler (if available).
// - Otherwise: returns a key-not-found error.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	v, ok := bh.bindingMap[key]
	if !ok {
		return delegateBindingEffect(ctx, key)
	}
	return v, nil
}
