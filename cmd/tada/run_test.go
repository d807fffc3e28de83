package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/ui"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TADA_CONFIG", "")

	var out, errOut bytes.Buffer
	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = &out, &errOut
	t.Cleanup(func() { ui.Stdout, ui.Stderr = oldOut, oldErr })

	// Flag values stick to the package-level commands between executions.
	require.NoError(t, rootCmd.PersistentFlags().Set("theme", "classic"))
	require.NoError(t, runCmd.Flags().Set("seed", "0"))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String() + errOut.String(), err
}

func TestRunFromStdin(t *testing.T) {
	out, err := execute(t, "add buy milk\ndone 1\nls\n", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "added #1")
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "Total 1")
}

func TestRunYAMLScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - inc\n  - inc\n  - count\n"), 0o644))

	out, err := execute(t, "", "run", "--theme", "mono", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Count: 2")
}

func TestRunUsageErrorSetsExitCode(t *testing.T) {
	out, err := execute(t, "done x\n", "run", "-")
	var code exitCode
	require.ErrorAs(t, err, &code)
	assert.Equal(t, exitCode(2), code)
	assert.Contains(t, out, "not a number")
}

func TestRunRejectsBadTheme(t *testing.T) {
	_, err := execute(t, "", "run", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}
