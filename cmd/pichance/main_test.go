// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pichance/absence"
	"github.com/katalvlaran/pichance/cmd/pichance/config"
	"github.com/katalvlaran/pichance/phrase"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and optional stdin.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestEstimate_Digits(t *testing.T) {
	out, _, err := run(t, "", "estimate", "--mode", "digits", "--digits", "2", "11", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "P(ABSENT)")
	require.Contains(t, lines[1], "0.99")
	require.Contains(t, lines[1], "1.0000")
	require.Contains(t, lines[2], "0.81")
	require.Contains(t, lines[2], "19.0000")
}

func TestEstimate_Letters(t *testing.T) {
	out, _, err := run(t, "", "estimate", "--digits", "0", "Hello")
	require.NoError(t, err)
	require.Contains(t, out, "0704111114")
	require.Contains(t, out, "0.0000")

	out, _, err = run(t, "", "estimate", "--base", "1", "--digits", "0", "Hello")
	require.NoError(t, err)
	require.Contains(t, out, "0805121215")
}

func TestEstimate_Exact(t *testing.T) {
	out, _, err := run(t, "", "estimate", "--exact", "--mode", "digits", "--digits", "3", "11")
	require.NoError(t, err)
	require.Contains(t, out, "0.981000000000")
	require.Contains(t, out, "1.9000")
}

func TestEstimate_Errors(t *testing.T) {
	_, _, err := run(t, "", "estimate", "--mode", "digits", "abc")
	require.ErrorIs(t, err, phrase.ErrEmptyInput)

	_, _, err = run(t, "", "estimate", "1234")
	require.ErrorIs(t, err, phrase.ErrNoLetters)

	_, _, err = run(t, "", "estimate", "--digits", "-1", "abc")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "estimate", "--mode", "hex", "abc")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "estimate", "--exact", "abc")
	require.ErrorIs(t, err, absence.ErrExactLimit)

	_, _, err = run(t, "", "estimate")
	require.Error(t, err)
}

func TestEstimate_ExactCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs([]string{"estimate", "--exact", "--digits", "4096", "abcdefghijklmnopqrst"})
	err := root.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestEstimate_DebugLogging(t *testing.T) {
	_, errOut, err := run(t, "", "estimate", "--log-level", "debug", "--digits", "100", "pi")
	require.NoError(t, err)
	require.Contains(t, errOut, "msg=estimated")
	require.Contains(t, errOut, "pattern_len=4")
	require.Contains(t, errOut, "digits=100")
}

func TestBatch_Stdin(t *testing.T) {
	out, _, err := run(t, "# inputs\n11\n\n  7  \n", "batch", "--mode", "digits", "--digits", "2", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "11 "))
	require.Contains(t, lines[1], "0.99")
	require.True(t, strings.HasPrefix(lines[2], "7 "))
	require.Contains(t, lines[2], "0.81")
}

func TestBatch_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o600))

	out, _, err := run(t, "", "batch", "--digits", "1000", path)
	require.NoError(t, err)
	require.Contains(t, out, "0704111114")
	require.Contains(t, out, "2214171103")

	_, _, err = run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatch_BadLine(t *testing.T) {
	_, _, err := run(t, "12\nxx\n", "batch", "--mode", "digits")
	require.ErrorIs(t, err, phrase.ErrEmptyInput)
	require.ErrorContains(t, err, "line 2")
}

func TestAutomaton(t *testing.T) {
	out, _, err := run(t, "", "automaton", "--mode", "digits", "1212")
	require.NoError(t, err)
	require.Contains(t, out, "pattern: 1212")
	require.Contains(t, out, "failure: [0 0 1 2]")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+1+4) // pattern, failure, header, one row per transient state
	require.Equal(t, []string{"0", "0", "1", "0", "0", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[3]))
	// state 3 ("121") completes on '2' and falls back to "1" on '1'
	require.Equal(t, []string{"3", "0", "1", "4", "0", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[6]))
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "", "decode", "0704111114", "0799")
	require.NoError(t, err)
	require.Equal(t, "HELLO\nH99\n", out)

	out, _, err = run(t, "", "decode", "--base", "1", "0805121215")
	require.NoError(t, err)
	require.Equal(t, "HELLO\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pichance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: digits\ndigits: 2\n"), 0o600))

	out, _, err := run(t, "", "estimate", "--config", path, "11")
	require.NoError(t, err)
	require.Contains(t, out, "0.99")

	// flags override the file
	out, _, err = run(t, "", "estimate", "--config", path, "--digits", "0", "11")
	require.NoError(t, err)
	require.Contains(t, out, "0.0000")
}
