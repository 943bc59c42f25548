package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz"
)

// resetRunFlags restores the run command's flags to their defaults;
// flag values persist across Execute calls within one process.
func resetRunFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"algo", "values", "file", "random", "seed",
		"start", "speed", "directed", "weighted", "headless",
	} {
		f := runCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		require.NoError(t, runCmd.Flags().Set(name, f.DefValue))
		f.Changed = false
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetRunFlags(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, lvlviz.Name)
	assert.Contains(t, out, lvlviz.Version)
}

func TestRunCommandHeadlessSort(t *testing.T) {
	out := execute(t, "run", "--algo", "bubble", "--values", "3,1,2", "--headless")

	assert.Contains(t, out, "bubble: completed")
	assert.Contains(t, out, "frames:")
	assert.Contains(t, out, "sorted: [1 2 3]")
}

func TestRunCommandGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("A: B\nB: C\nC:\n"), 0o644))

	out := execute(t, "run", "--algo", "dfs", "--file", path, "--start", "A", "--headless")

	assert.Contains(t, out, "dfs: completed")
	assert.Contains(t, out, "order: A B C")
}

func TestRunCommandRandomGraph(t *testing.T) {
	out := execute(t, "run",
		"--algo", "dijkstra", "--random", "5", "--seed", "3", "--weighted", "--headless")

	assert.Contains(t, out, "dijkstra: completed")
	assert.Contains(t, out, "dist:")
}
