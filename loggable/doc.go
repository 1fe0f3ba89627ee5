// Package loggable pairs a computed value with the ordered history of how it was derived.
//
// A Value[T] is created by Wrap (empty history) or returned by a Transform (one or more
// entries). Run unwraps a Value, feeds the raw value to the next Transform and concatenates
// both histories, so a chain of pure functions yields its result together with a readable
// account of every step:
//
//	a := loggable.Wrap(2)
//	b := loggable.Run(a, arith.Square)
//	c := loggable.Run(b, arith.AddOne)
//
//	c.Value() // 5
//	c.Log()   // ["squared 2 to get 4", "added 1 to 4 to get 5"]
//
// Every monad has three things, and this package has exactly those:
//   - a wrapper type (Value),
//   - a wrap function (Wrap), often called pure, return or unit,
//   - a run function (Run), often called bind or >>=.
//
// Values are immutable. Run never appends in place, so one Value can safely feed any
// number of chains. Nothing here performs I/O; emitting a history to a real logger is the
// job of the log effect (see effects/log.Replay).
package loggable
