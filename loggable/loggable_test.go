package loggable_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/on-the-ground/monads_in_go/loggable"
	"github.com/on-the-ground/monads_in_go/loggable/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Identity(t *testing.T) {
	for _, v := range []int{0, 2, 7, -13} {
		w := loggable.Wrap(v)
		assert.Equal(t, v, w.Value())
		assert.NotNil(t, w.Log())
		assert.Empty(t, w.Log())
	}

	s := loggable.Wrap("hello")
	assert.Equal(t, "hello", s.Value())
	assert.Empty(t, s.Log())
}

func TestRun_SquareThenAddOne(t *testing.T) {
	a := loggable.Wrap(2)
	b := loggable.Run(a, arith.Square)
	c := loggable.Run(b, arith.AddOne)

	assert.Equal(t, 4, b.Value())
	if diff := cmp.Diff([]string{"squared 2 to get 4"}, b.Log()); diff != "" {
		t.Errorf("b.Log() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 5, c.Value())
	want := []string{"squared 2 to get 4", "added 1 to 4 to get 5"}
	if diff := cmp.Diff(want, c.Log()); diff != "" {
		t.Errorf("c.Log() mismatch (-want +got):\n%s", diff)
	}

	// inputs are untouched
	assert.Empty(t, a.Log())
	assert.Len(t, b.Log(), 1)
}

func TestRun_LogAdditivityAndOrder(t *testing.T) {
	inputs := []loggable.Value[int]{
		loggable.Wrap(3),
		loggable.Of(3, "seeded"),
		loggable.Of(3, "first", "second", "third"),
	}
	transforms := map[string]loggable.Transform[int, int]{
		"square": arith.Square,
		"addOne": arith.AddOne,
		"silent": func(x int) loggable.Value[int] { return loggable.Wrap(x) },
		"chatty": func(x int) loggable.Value[int] { return loggable.Of(x, "a", "b") },
	}

	for _, in := range inputs {
		for name, f := range transforms {
			t.Run(fmt.Sprintf("%s/%d", name, in.Len()), func(t *testing.T) {
				out := f(in.Value())
				got := loggable.Run(in, f)

				assert.Equal(t, out.Value(), got.Value())
				assert.Equal(t, in.Len()+out.Len(), got.Len())
				want := append(in.Log(), out.Log()...)
				if diff := cmp.Diff(want, got.Log()); diff != "" {
					t.Errorf("log mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestRun_ChangesType(t *testing.T) {
	describe := func(x int) loggable.Value[string] {
		return loggable.Of(fmt.Sprintf("#%d", x), fmt.Sprintf("formatted %d", x))
	}
	got := loggable.Run(loggable.Run(loggable.Wrap(3), arith.Square), describe)

	assert.Equal(t, "#9", got.Value())
	assert.Equal(t, []string{"squared 3 to get 9", "formatted 9"}, got.Log())
}

func TestRun_Associativity(t *testing.T) {
	for _, v := range []int{-2, 0, 2, 9} {
		left := loggable.Run(loggable.Run(loggable.Wrap(v), arith.Square), arith.AddOne)
		right := loggable.Run(loggable.Wrap(v), func(x int) loggable.Value[int] {
			return loggable.Run(arith.Square(x), arith.AddOne)
		})

		assert.Equal(t, left.Value(), right.Value())
		assert.Equal(t, left.Log(), right.Log())
	}
}

func TestRun_IdentityLaws(t *testing.T) {
	// left identity
	left := loggable.Run(loggable.Wrap(6), arith.Square)
	direct := arith.Square(6)
	assert.Equal(t, direct.Value(), left.Value())
	assert.Equal(t, direct.Log(), left.Log())

	// right identity
	m := loggable.Of(4, "given")
	right := loggable.Run(m, loggable.Wrap[int])
	assert.Equal(t, m.Value(), right.Value())
	assert.Equal(t, m.Log(), right.Log())
}

func TestRun_SharedInputDoesNotAlias(t *testing.T) {
	// leave spare capacity so an in-place append would be visible
	base := loggable.Run(loggable.Run(loggable.Wrap(2), arith.Square), arith.Square)

	viaAdd := loggable.Run(base, arith.AddOne)
	viaDouble := loggable.Run(base, arith.Double)

	assert.Equal(t, []string{"squared 2 to get 4", "squared 4 to get 16", "added 1 to 16 to get 17"}, viaAdd.Log())
	assert.Equal(t, []string{"squared 2 to get 4", "squared 4 to get 16", "doubled 16 to get 32"}, viaDouble.Log())
	assert.Len(t, base.Log(), 2)
}

func TestLog_ReturnsCopy(t *testing.T) {
	v := loggable.Run(loggable.Wrap(2), arith.Square)

	got := v.Log()
	got[0] = "tampered"

	assert.Equal(t, []string{"squared 2 to get 4"}, v.Log())
}

func TestOf_CopiesEntries(t *testing.T) {
	entries := []string{"one"}
	v := loggable.Of(1, entries...)
	entries[0] = "changed"

	assert.Equal(t, []string{"one"}, v.Log())
}

func TestRun_PanicPropagates(t *testing.T) {
	explode := func(s string) loggable.Value[string] {
		return loggable.Of(string(s[4]), "took the fifth character")
	}

	assert.Panics(t, func() {
		loggable.Run(loggable.Wrap("abc"), explode)
	})

	got := loggable.Run(loggable.Wrap("abcdef"), explode)
	assert.Equal(t, "e", got.Value())
}

func TestValue_ZeroValue(t *testing.T) {
	var v loggable.Value[int]
	assert.Equal(t, 0, v.Value())
	assert.NotNil(t, v.Log())
	assert.Equal(t, 0, v.Len())

	got := loggable.Run(v, arith.AddOne)
	assert.Equal(t, []string{"added 1 to 0 to get 1"}, got.Log())
}

func TestValue_String(t *testing.T) {
	c := loggable.Run(loggable.Run(loggable.Wrap(2), arith.Square), arith.AddOne)
	require.Equal(t, "{value: 5, log: [squared 2 to get 4, added 1 to 4 to get 5]}", c.String())
	require.Equal(t, "{value: 7, log: []}", loggable.Wrap(7).String())
}
