package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/on-the-ground/monads_in_go/effects/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	ctx, endOfConsole := console.WithEffectHandler(context.Background(), 1, strings.NewReader("hunter2\r\nsecond\nlast"), &out)
	defer endOfConsole()

	reply, err := console.ReadLine(ctx, "enter your password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", reply.Text)
	assert.GreaterOrEqual(t, reply.Span.Duration().Nanoseconds(), int64(0))

	reply, err = console.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "second", reply.Text)

	// final line without a newline still counts
	reply, err = console.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "last", reply.Text)

	_, err = console.ReadLine(ctx, "more? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "enter your password: more? ", out.String())
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	ctx, endOfConsole := console.WithEffectHandler(context.Background(), 4, strings.NewReader(""), &out)

	require.NoError(t, console.WriteLine(ctx, 5))
	require.NoError(t, console.WriteLine(ctx, "x is", 15))
	require.NoError(t, console.WriteLine(ctx))
	endOfConsole()

	assert.Equal(t, "5\nx is 15\n\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLine_PropagatesWriterError(t *testing.T) {
	ctx, endOfConsole := console.WithEffectHandler(context.Background(), 1, strings.NewReader("x\n"), failingWriter{})
	defer endOfConsole()

	err := console.WriteLine(ctx, "hello")
	assert.ErrorContains(t, err, "disk full")

	_, err = console.ReadLine(ctx, "prompt")
	assert.ErrorContains(t, err, "write prompt")
}

func TestReadLine_WithoutHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = console.ReadLine(context.Background(), "?")
	})
}

func TestReadLine_CancelledContext(t *testing.T) {
	ctx, endOfConsole := console.WithEffectHandler(context.Background(), 1, strings.NewReader("never read\n"), io.Discard)
	defer endOfConsole()

	ctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := console.ReadLine(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
