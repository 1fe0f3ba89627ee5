package loggable

import (
	"fmt"
	"slices"
	"strings"
)

// Value is a computed value together with the history of how it was derived.
// The zero Value holds the zero T and an empty history.
type Value[T any] struct {
	value T
	log   []string
}

// Transform is a pure function from a raw value to a Value carrying its own history.
type Transform[T, U any] func(T) Value[U]

// Wrap lifts a raw value into a Value with an empty history.
func Wrap[T any](v T) Value[T] {
	return Value[T]{value: v, log: []string{}}
}

// Of builds a Value with the given history. Transformations use it to report what they did.
func Of[T any](v T, entries ...string) Value[T] {
	return Value[T]{value: v, log: append([]string{}, entries...)}
}

// Run applies f to the raw value held by in and returns a new Value whose history is
// in's history followed by f's. Neither input is modified.
//
// Run adds no error handling: if f panics, the panic reaches the caller unchanged.
func Run[T, U any](in Value[T], f Transform[T, U]) Value[U] {
	out := f(in.value)
	log := make([]string, 0, len(in.log)+len(out.log))
	log = append(log, in.log...)
	log = append(log, out.log...)
	return Value[U]{value: out.value, log: log}
}

// Value returns the current computed result.
func (v Value[T]) Value() T {
	return v.value
}

// Log returns a copy of the history in application order.
func (v Value[T]) Log() []string {
	if v.log == nil {
		return []string{}
	}
	return slices.Clone(v.log)
}

// Len reports the number of history entries.
func (v Value[T]) Len() int {
	return len(v.log)
}

// String renders the value as {value: 5, log: [squared 2 to get 4, added 1 to 4 to get 5]}.
func (v Value[T]) String() string {
	return fmt.Sprintf("{value: %v, log: [%s]}", v.value, strings.Join(v.log, ", "))
}
