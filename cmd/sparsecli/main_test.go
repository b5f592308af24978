// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthosparse/sparse"
	"github.com/katalvlaran/orthosparse/triplet"
)

// fixture writes the named triplet files into a fresh directory.
func fixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

var files = map[string]string{
	"a.txt":   "2 2\n1 1 1\n2 2 2\n",
	"b.txt":   "2 2\n1 2 3\n",
	"col.txt": "3 1\n2 1 4\n",
	"inf.txt": "1 1\n1 1 Inf\n",
}

func TestPrint(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	out, _, err := run(t, "", "print", filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "1 0\n0 2\n", out)
}

func TestSumAndMultiply(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	out, _, err := run(t, "", "sum", a, b)
	require.NoError(t, err)
	require.Equal(t, "1 3\n0 2\n", out)

	dst := filepath.Join(dir, "p.txt")
	out, _, err = run(t, "", "multiply", a, b, "-o", dst)
	require.NoError(t, err)
	require.Empty(t, out)
	p, err := triplet.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []sparse.Cell{{Row: 1, Col: 2, Value: 3}}, p.Cells())

	_, _, err = run(t, "", "sum", a, filepath.Join(dir, "col.txt"))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	out, _, err := run(t, "", "transpose", filepath.Join(dir, "col.txt"))
	require.NoError(t, err)
	require.Equal(t, "0 4 0\n", out)
}

func TestArgsAndFlags(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	_, _, err := run(t, "", "print")
	require.Error(t, err)

	_, _, err = run(t, "", "--log-level", "loud", "print", filepath.Join(dir, "a.txt"))
	require.ErrorContains(t, err, "invalid loglevel")

	_, _, err = run(t, "", "--color", "sometimes", "print", filepath.Join(dir, "a.txt"))
	require.ErrorContains(t, err, "invalid color mode")

	out, _, err := run(t, "", "--color", "always", "print", filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Contains(t, out, "\x1b[")
}

func TestNaNInfPolicy(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	_, _, err := run(t, "", "print", filepath.Join(dir, "inf.txt"))
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	out, _, err := run(t, "", "--allow-naninf", "print", filepath.Join(dir, "inf.txt"))
	require.NoError(t, err)
	require.Equal(t, "+Inf\n", out)
}

func TestSpy(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	dst := filepath.Join(dir, "a.svg")
	_, _, err := run(t, "", "spy", filepath.Join(dir, "a.txt"), "-o", dst, "--title", "A")
	require.NoError(t, err)
	body, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(body), "<svg")
}

func TestShellWithConfig(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	cfg := filepath.Join(dir, "sparsecli.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"log:\n  level: debug\n  formatter: json\n"+
			"display:\n  color: never\n"+
			"workspace:\n  dir: "+dir+"\n  parallelism: 2\n"+
			"  preload:\n    - {name: A, path: a.txt}\n    - {name: B, path: b.txt}\n",
	), 0o600))

	out, logs, err := run(t, "6\n3\nA\nB\nn\n7\n", "--config", cfg, "shell")
	require.NoError(t, err)
	require.Contains(t, out, "A |2 x 2| 2 cells")
	require.Contains(t, out, "B |2 x 2| 1 cells")
	require.Contains(t, out, "1 3\n0 2\n")
	require.Contains(t, logs, `"msg":"matrix loaded"`)
}

func TestShellPreloadFailure(t *testing.T) {
	t.Parallel()
	dir := fixture(t, files)
	cfg := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"workspace:\n  dir: "+dir+"\n  preload:\n    - {name: X, path: missing.txt}\n",
	), 0o600))

	_, _, err := run(t, "", "--config", cfg, "shell")
	require.ErrorContains(t, err, "preload")
}
