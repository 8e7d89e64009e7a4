package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/fppc"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(context.Background(), append([]string{"fppc"}, args...))

	return out.String(), err
}

func TestParse(t *testing.T) {
	t.Parallel()

	out, err := run(t, "parse", "node", "(x:Person", "{{a:", "int}})")
	require.NoError(t, err)
	assert.Equal(t, "(Descriptor(x, Person {a: int}))\n", out)

	out, err = run(t, "parse", "expr", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 * 3))\n", out)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "parse", "node")
	require.ErrorIs(t, err, ErrParseUsage)

	_, err = run(t, "parse", "query", "(x)")
	require.ErrorIs(t, err, fppc.ErrUnknownKind)

	_, err = run(t, "parse", "node", "(x", "extra")

	var pe *fppc.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cases := filepath.Join(dir, "a.golden.yaml")
	require.NoError(t, os.WriteFile(cases, []byte(`cases:
  - kind: label
    input: A & B
    want: (A & B)
  - kind: label
    input: A | B
    want: wrong
`), 0o600))

	out, err := run(t, "check", dir)
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "FAIL ")
	assert.Contains(t, out, "1 passed, 1 failed")

	out, err = run(t, "check", "--update", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "updated 2 cases in 1 files")

	out, err = run(t, "check", "-v", cases)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   ")
	assert.Contains(t, out, "2 passed, 0 failed")
}

func TestCheckCountsEachFileOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cases := filepath.Join(dir, "a.golden.yaml")
	require.NoError(t, os.WriteFile(cases, []byte(`cases:
  - kind: label
    input: A | B
    want: stale
`), 0o600))

	out, err := run(t, "check", "--update", dir, cases)
	require.NoError(t, err)
	assert.Contains(t, out, "updated 1 cases in 1 files")

	out, err = run(t, "check", dir, cases)
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestCheckUsesConfiguredPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cases"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cases", "x.golden.yaml"), []byte(`cases:
  - kind: simple
    input: Bool
    want: bool
`), 0o600))

	config := filepath.Join(dir, ".fppc.yaml")
	require.NoError(t, os.WriteFile(config, []byte("check:\n  paths: [cases]\n"), 0o600))

	out, err := run(t, "--config", config, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))

	logger, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = newLogger("loud", false)
	require.Error(t, err)
}
