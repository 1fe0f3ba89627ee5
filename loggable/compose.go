package loggable

import (
	"github.com/on-the-ground/monads_in_go/purefn"
)

// Tell returns a step that keeps the value and only appends entries to the history.
func Tell[T any](entries ...string) Transform[T, T] {
	return func(v T) Value[T] {
		return Of(v, entries...)
	}
}

// Lift turns a plain pure function into a Transform. describe receives the input and the
// output and returns the single history entry for the step.
func Lift[T, U any](fn func(T) U, describe func(in T, out U) string) Transform[T, U] {
	return func(in T) Value[U] {
		out := fn(in)
		return Of(out, describe(in, out))
	}
}

// Compose chains two transformations into one.
// Run(m, Compose(f, g)) is equal to Run(Run(m, f), g).
func Compose[T, U, V any](f Transform[T, U], g Transform[U, V]) Transform[T, V] {
	return func(in T) Value[V] {
		return Run(f(in), g)
	}
}

// Pipe runs every step in order, starting from in.
func Pipe[T any](in Value[T], steps ...Transform[T, T]) Value[T] {
	out := in
	for _, step := range steps {
		out = Run(out, step)
	}
	return out
}

// Memoize caches the results of f by input. It is only correct because a Transform is pure;
// do not memoize anything that reads time, I/O or shared state.
//
// Inputs must be comparable or implement fmt.Stringer. maxTableSize bounds the cache
// the same way as purefn.TableizeI1O1.
func Memoize[T purefn.ComparableOrStringer, U any](f Transform[T, U], maxTableSize uint32) Transform[T, U] {
	return purefn.TableizeI1O1[T, Value[U]](f, maxTableSize)
}
