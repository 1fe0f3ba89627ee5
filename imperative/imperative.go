// Package imperative shows the kind of code monads are meant to tame: state that is
// reassigned, input read from a user, and indexing that only fails at run time.
//
// Every side effect goes through the console and binding effects, so the functions
// can be run against a real terminal or a scripted one.
package imperative

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/monads_in_go/effects/binding"
	"github.com/on-the-ground/monads_in_go/effects/configkeys"
	"github.com/on-the-ground/monads_in_go/effects/console"
)

// DefaultPrompt is shown when no prompt is bound.
const DefaultPrompt = "enter your password: "

var (
	ErrPasswordTooShort = errors.New("password too short")
	ErrNegativeIndex    = errors.New("negative index")
)

// Reassign assigns x, prints it, reassigns it and prints a derived value: 5 then 15.
func Reassign(ctx context.Context) error {
	x := 5
	if err := console.WriteLine(ctx, x); err != nil {
		return err
	}

	x = x + 5
	return console.WriteLine(ctx, x+5)
}

// FifthChar asks for a password, prints its fifth character and returns it.
func FifthChar(ctx context.Context) (string, error) {
	password, err := readPassword(ctx)
	if err != nil {
		return "", err
	}

	fifth, err := charAt(password, 4)
	if err != nil {
		return "", err
	}
	if err := console.WriteLine(ctx, fifth); err != nil {
		return "", err
	}
	return fifth, nil
}

// NthChar asks for a password and returns its nth character (0-based).
// The caller's counter comes back incremented; nothing outside the call is modified.
// The counter is incremented before indexing, so a failed lookup still counts.
func NthChar(ctx context.Context, n int, count int) (string, int, error) {
	password, err := readPassword(ctx)
	if err != nil {
		return "", count, err
	}
	count = count + 1

	nth, err := charAt(password, n)
	if err != nil {
		return "", count, err
	}
	return nth, count, nil
}

func readPassword(ctx context.Context) (string, error) {
	prompt, err := binding.GetOr(ctx, configkeys.ConfigEffectConsolePrompt, DefaultPrompt)
	if err != nil {
		return "", fmt.Errorf("resolve prompt: %w", err)
	}

	reply, err := console.ReadLine(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return reply.Text, nil
}

// charAt indexes by character, not by byte.
func charAt(s string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	chars := []rune(s)
	if n >= len(chars) {
		return "", fmt.Errorf("%w: index %d out of range for length %d", ErrPasswordTooShort, n, len(chars))
	}
	return string(chars[n]), nil
}
