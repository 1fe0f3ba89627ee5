// Package pipeline runs named chains of integer transformations.
//
// A Definition names a start value and the steps to apply, and can be written in YAML:
//
//	start: 2
//	steps: [square, addOne]
//
// Running it yields the final value together with the history of every step.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/on-the-ground/monads_in_go/loggable"
	"github.com/on-the-ground/monads_in_go/loggable/arith"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStep  = errors.New("unknown step")
	ErrInvalidInput = errors.New("invalid pipeline definition")
)

// Definition is a start value and the names of the steps to apply to it, in order.
type Definition struct {
	Start int      `yaml:"start"`
	Steps []string `yaml:"steps"`
}

// Decode reads a single YAML Definition. Unknown fields are rejected.
func Decode(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("%w: empty document", ErrInvalidInput)
		}
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return def, nil
}

// ParseSteps splits a comma-separated list such as "square, addOne".
// Empty items are dropped.
func ParseSteps(s string) []string {
	var steps []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			steps = append(steps, name)
		}
	}
	return steps
}

// Registry maps step names to transformations.
type Registry map[string]loggable.Transform[int, int]

// DefaultRegistry returns the steps from package arith.
func DefaultRegistry() Registry {
	return Registry{
		"square": arith.Square,
		"addOne": arith.AddOne,
		"double": arith.Double,
		"negate": arith.Negate,
	}
}

// Memoized returns a copy of r whose steps cache their results.
func (r Registry) Memoized(maxTableSize uint32) Registry {
	out := make(Registry, len(r))
	for name, step := range r {
		out[name] = loggable.Memoize(step, maxTableSize)
	}
	return out
}

// Names lists the registered step names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up every step of def. It fails on the first unknown name.
func (r Registry) Resolve(def Definition) ([]loggable.Transform[int, int], error) {
	steps := make([]loggable.Transform[int, int], 0, len(def.Steps))
	for i, name := range def.Steps {
		step, ok := r[name]
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d (known: %s)",
				ErrUnknownStep, name, i+1, strings.Join(r.Names(), ", "))
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Run wraps def.Start and chains every step onto it. Nothing runs unless every step
// name resolves. A step whose result does not fit in an int fails the whole run with
// an error wrapping arith.ErrOverflow; any other panic is left to propagate.
func (r Registry) Run(def Definition) (out loggable.Value[int], err error) {
	steps, err := r.Resolve(def)
	if err != nil {
		return loggable.Value[int]{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			if rErr, ok := rec.(error); ok && errors.Is(rErr, arith.ErrOverflow) {
				out, err = loggable.Value[int]{}, rErr
				return
			}
			panic(rec)
		}
	}()

	return loggable.Pipe(loggable.Wrap(def.Start), steps...), nil
}
