// Package arith holds the integer transformations used to demonstrate loggable chains.
//
// Results that do not fit in an int panic with an error wrapping ErrOverflow rather than
// recording a wrapped-around value in the history.
package arith

import (
	"errors"
	"fmt"
	"math"

	"github.com/on-the-ground/monads_in_go/loggable"
)

var ErrOverflow = errors.New("integer overflow")

// Square returns x*x with the entry "squared {x} to get {x*x}".
func Square(x int) loggable.Value[int] {
	sq := x * x
	if x != 0 && sq/x != x {
		panic(fmt.Errorf("%w: squaring %d", ErrOverflow, x))
	}
	return loggable.Of(sq, fmt.Sprintf("squared %d to get %d", x, sq))
}

// AddOne returns x+1 with the entry "added 1 to {x} to get {x+1}".
func AddOne(x int) loggable.Value[int] {
	if x == math.MaxInt {
		panic(fmt.Errorf("%w: adding 1 to %d", ErrOverflow, x))
	}
	return loggable.Of(x+1, fmt.Sprintf("added 1 to %d to get %d", x, x+1))
}

// Double returns 2*x with the entry "doubled {x} to get {2*x}".
var Double loggable.Transform[int, int] = loggable.Lift(
	func(x int) int {
		if x > math.MaxInt/2 || x < math.MinInt/2 {
			panic(fmt.Errorf("%w: doubling %d", ErrOverflow, x))
		}
		return 2 * x
	},
	func(in, out int) string { return fmt.Sprintf("doubled %d to get %d", in, out) },
)

// Negate returns -x with the entry "negated {x} to get {-x}".
var Negate loggable.Transform[int, int] = loggable.Lift(
	func(x int) int {
		if x == math.MinInt {
			panic(fmt.Errorf("%w: negating %d", ErrOverflow, x))
		}
		return -x
	},
	func(in, out int) string { return fmt.Sprintf("negated %d to get %d", in, out) },
)
