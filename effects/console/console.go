// Package console turns terminal interaction into an effect.
//
// Prompting a user and printing results are exactly the side effects a pure function
// cannot perform. Code that needs them performs ReadLine or WriteLine, and whoever set
// up the context decides where the lines come from and go to.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/on-the-ground/monads_in_go/effects"
	effectmodel "github.com/on-the-ground/monads_in_go/effects/internal/model"
	"github.com/rickb777/date/v2/timespan"
)

// Reply is a line typed by the user.
type Reply struct {
	Text string
	// Span covers the time between showing the prompt and receiving the line.
	Span timespan.TimeSpan
}

// payload is sealed: only readLine and writeLine reach the handler.
type payload interface {
	consolePayload()
}

type readLine struct {
	prompt string
}

func (readLine) consolePayload() {}

type writeLine struct {
	args []any
}

func (writeLine) consolePayload() {}

// WithEffectHandler registers the console effect reading lines from in and writing to out.
// A single worker serves the effect so prompts and answers never interleave.
func WithEffectHandler(
	ctx context.Context,
	bufferSize int,
	in io.Reader,
	out io.Writer,
) (context.Context, func() context.Context) {
	h := &consoleHandler{
		in:  bufio.NewReader(in),
		out: out,
	}
	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectConsole,
		h.handle,
	)
}

// ReadLine shows prompt and returns the next line of input without its line ending.
// At end of input with nothing read it returns io.EOF.
func ReadLine(ctx context.Context, prompt string) (Reply, error) {
	return perform(ctx, readLine{prompt: prompt})
}

// WriteLine prints its operands like fmt.Println.
func WriteLine(ctx context.Context, a ...any) error {
	_, err := perform(ctx, writeLine{args: a})
	return err
}

func perform(ctx context.Context, p payload) (Reply, error) {
	return effects.Await(ctx, effects.PerformResumableEffect[payload, Reply](ctx, effectmodel.EffectConsole, p))
}

type consoleHandler struct {
	in  *bufio.Reader
	out io.Writer
}

func (h *consoleHandler) handle(_ context.Context, p payload) (Reply, error) {
	switch p := p.(type) {
	case readLine:
		return h.readLine(p.prompt)
	case writeLine:
		if _, err := fmt.Fprintln(h.out, p.args...); err != nil {
			return Reply{}, fmt.Errorf("write line: %w", err)
		}
		return Reply{}, nil
	default:
		panic(fmt.Errorf("invalid console operation type: %T", p))
	}
}

func (h *consoleHandler) readLine(prompt string) (Reply, error) {
	if prompt != "" {
		if _, err := io.WriteString(h.out, prompt); err != nil {
			return Reply{}, fmt.Errorf("write prompt: %w", err)
		}
	}

	start := time.Now()
	line, err := h.in.ReadString('\n')
	end := time.Now()

	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return Reply{}, io.EOF
		}
		return Reply{}, fmt.Errorf("read line: %w", err)
	}

	return Reply{
		Text: strings.TrimRight(line, "\r\n"),
		Span: timespan.BetweenTimes(start, end),
	}, nil
}
