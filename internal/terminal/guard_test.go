package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// notATerminal is a descriptor that term.IsTerminal rejects.
const notATerminal = -1

func TestGuardWith_RestoresOnSuccess(t *testing.T) {
	var out bytes.Buffer
	ran := false

	err := GuardWith(notATerminal, &out, func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	require.True(t, ran)
	require.Equal(t, restoreSequence, out.String())
}

func TestGuardWith_PassesErrorThrough(t *testing.T) {
	var out bytes.Buffer
	want := errors.New("program failed")

	err := GuardWith(notATerminal, &out, func() error { return want })

	require.ErrorIs(t, err, want)
	require.Equal(t, restoreSequence, out.String())
}

func TestGuardWith_RecoversPanic(t *testing.T) {
	var out bytes.Buffer

	err := GuardWith(notATerminal, &out, func() error {
		panic("boom")
	})

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "boom", perr.Value)
	require.NotEmpty(t, perr.Stack)
	require.Contains(t, err.Error(), "panic: boom")
	require.Equal(t, restoreSequence, out.String(), "terminal is reset after a panic")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestGuardWith_ReportsRestoreFailure(t *testing.T) {
	err := GuardWith(notATerminal, failingWriter{}, func() error { return nil })

	require.ErrorContains(t, err, "reset terminal")
}
