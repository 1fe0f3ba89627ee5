package purefn

import (
	"fmt"
)

// ComparableOrStringer is an argument that can key the memo table: either a comparable
// value or a fmt.Stringer whose String() identifies it.
type ComparableOrStringer any

// ComparableOrString is the key actually stored in the table.
type ComparableOrString any

// TableizeI1O1 returns a memoized version of a pure one-argument function. At most
// maxTableSize results are kept per generation.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

// TableizeI2O1 is TableizeI1O1 for two-argument functions, keyed by both arguments.
func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	maxTableSize uint32,
) func(...ComparableOrStringer) O {
	memo := NewTrie[O](maxTableSize)
	return func(args ...ComparableOrStringer) O {
		keys := make([]ComparableOrString, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}
