package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/monads_in_go/imperative"
	"github.com/on-the-ground/monads_in_go/loggable/arith"
	"github.com/on-the-ground/monads_in_go/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the command tree with the given environment, input and arguments.
func execute(t *testing.T, environ map[string]string, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(environ)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLogs_Defaults(t *testing.T) {
	out, errOut, err := execute(t, map[string]string{}, "", "logs")
	require.NoError(t, err)

	assert.Equal(t, "{value: 5, log: [squared 2 to get 4, added 1 to 4 to get 5]}\n", out)
	assert.Contains(t, errOut, "squared 2 to get 4")
	assert.Contains(t, errOut, "added 1 to 4 to get 5")
	assert.Contains(t, errOut, `"step": 2`)
}

func TestLogs_Flags(t *testing.T) {
	out, _, err := execute(t, map[string]string{}, "", "logs", "--start", "3", "--steps", "double, negate")
	require.NoError(t, err)
	assert.Equal(t, "{value: -6, log: [doubled 3 to get 6, negated 6 to get -6]}\n", out)
}

func TestLogs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: 1\nsteps:\n  - addOne\n  - square\n"), 0o600))

	out, errOut, err := execute(t, map[string]string{}, "", "logs", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "{value: 4, log: [added 1 to 1 to get 2, squared 2 to get 4]}\n", out)
	assert.Contains(t, errOut, path)
}

func TestLogs_Errors(t *testing.T) {
	t.Run("unknown step", func(t *testing.T) {
		out, _, err := execute(t, map[string]string{}, "", "logs", "--steps", "square,cube")
		assert.ErrorIs(t, err, pipeline.ErrUnknownStep)
		assert.Empty(t, out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, map[string]string{}, "", "logs", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pipeline.yaml")
		require.NoError(t, os.WriteFile(path, []byte("start: [1]\n"), 0o600))
		_, _, err := execute(t, map[string]string{}, "", "logs", "-f", path)
		assert.ErrorIs(t, err, pipeline.ErrInvalidInput)
	})

	t.Run("overflow", func(t *testing.T) {
		out, errOut, err := execute(t, map[string]string{}, "", "logs", "--start", "3037000500", "--steps", "square")
		assert.ErrorIs(t, err, arith.ErrOverflow)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "pipeline rejected")
	})

	t.Run("bad config", func(t *testing.T) {
		_, _, err := execute(t, map[string]string{"MONADS_LOG_BUFFER_SIZE": "0"}, "", "logs")
		assert.ErrorContains(t, err, "LOG_BUFFER_SIZE")
	})
}

func TestImperative(t *testing.T) {
	out, _, err := execute(t, map[string]string{}, "hunter2\nsecret\n", "imperative")
	require.NoError(t, err)

	prompt := "enter your password: "
	assert.Equal(t, "5\n15\n"+prompt+"e\n"+prompt+"s\n", out)
}

func TestImperative_PromptFromEnvironment(t *testing.T) {
	out, _, err := execute(t, map[string]string{"MONADS_PASSWORD_PROMPT": "> "}, "hunter2\nsecret\n", "imperative")
	require.NoError(t, err)
	assert.Equal(t, "5\n15\n> e\n> s\n", out)
}

func TestImperative_ShortPassword(t *testing.T) {
	_, _, err := execute(t, map[string]string{}, "abc\n", "imperative")
	assert.ErrorIs(t, err, imperative.ErrPasswordTooShort)
}

func TestImperative_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, map[string]string{"MONADS_LOG_LEVEL": "debug"}, "hunter2\nsecret\n", "imperative")
	require.NoError(t, err)
	assert.Contains(t, errOut, "effects ready")
	assert.Contains(t, errOut, `"count": 1`)
}
