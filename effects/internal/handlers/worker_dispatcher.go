package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
)

// WorkerDispatcher routes each message to the channel of the worker that owns it.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Stop makes every worker handle what is already buffered, then exit.
	// It blocks until all workers are gone.
	Stop()
}

// workers is the lifecycle shared by both queue kinds.
type workers struct {
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func newWorkers() *workers {
	return &workers{stopCh: make(chan struct{})}
}

func (w *workers) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// spawn starts one worker draining ch. The channel is closed when the worker exits so
// that late senders panic (and recover) instead of blocking forever.
func spawn[T any](ctx context.Context, w *workers, ch chan T, handleFn func(context.Context, T), ready *sync.WaitGroup) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer close(ch)
		ready.Done()
		for {
			select {
			case msg := <-ch:
				if ctx.Err() != nil {
					return
				}
				handleFn(ctx, msg)
			case <-ctx.Done():
				return
			case <-w.stopCh:
				for {
					select {
					case msg := <-ch:
						handleFn(ctx, msg)
					default:
						return
					}
				}
			}
		}
	}()
}

// --- single queue ---

type singleQueue[T any] struct {
	*workers
	effectCh chan T
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	w := newWorkers()
	effCh := make(chan T, bufferSize)
	ready := sync.WaitGroup{}
	ready.Add(1)
	spawn(ctx, w, effCh, handleFn, &ready)
	ready.Wait()
	return singleQueue[T]{workers: w, effectCh: effCh}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	*workers
	effectChs []chan T
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	w := newWorkers()
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		channels[i] = make(chan T, bufferSize)
		spawn(ctx, w, channels[i], handleFn, &ready)
	}
	ready.Wait()
	return partitionedQueue[T]{workers: w, effectChs: channels}
}
