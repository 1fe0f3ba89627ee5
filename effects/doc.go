// Package effects hosts the side effects that the pure parts of this module refuse to perform.
//
// A pure function's type signature tells the whole story: loggable.Run takes a value and a
// transformation and returns a value with its history, nothing more. Reading a password
// from a terminal, printing, or writing to a logger cannot be expressed that way, so those
// actions are delegated to handlers registered in a context.Context:
//
//	ctx, endOfConsole := console.WithEffectHandler(ctx, 1, os.Stdin, os.Stdout)
//	defer endOfConsole()
//
//	reply, err := console.ReadLine(ctx, "enter your password:")
//
// Code that performs an effect stays free of the concrete I/O; tests swap in a handler
// backed by a strings.Reader and a bytes.Buffer.
//
// Handlers come in two flavours:
//   - resumable: the performer waits for a result (console, binding),
//   - fire-and-forget: the performer continues immediately (log).
//
// Each handler runs its own workers. Closing a handler lets the workers finish what is
// already queued, runs its teardown, and releases its goroutines. Performing an effect
// with no handler registered panics with ErrNoEffectHandler.
package effects
