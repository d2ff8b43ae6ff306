package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI against args with the given stdin and
// returns captured stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Wiring(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"report", "walk", "components", "cycle", "dot", "serve", "cache"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "command %s not registered", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestReport_DirectedTriangle(t *testing.T) {
	out, err := runCommand(t, "4\n1 2\n2 3\n3 1\n", "report", "--no-cache")
	require.NoError(t, err)

	// Start defaults to n/2 = 2; the scan then picks up vertex 4.
	assert.Contains(t, out, "bfs: 2 3 1 4")
	assert.Contains(t, out, "dfs: 2 3 1 4")
	assert.Contains(t, out, "component 1: 1 2 3")
	assert.Contains(t, out, "component 2: 4")
	assert.Contains(t, out, "Cycle detected.")
}

func TestReport_UndirectedFlag(t *testing.T) {
	out, err := runCommand(t, "3\n1 2\n2 3\n", "report", "--undirected", "--no-cache")
	require.NoError(t, err)

	assert.Contains(t, out, "component 1: 1 2 3")
	assert.NotContains(t, out, "Cycle detected.")
}

func TestReport_StartFlag(t *testing.T) {
	out, err := runCommand(t, "3\n1 2\n2 3\n", "report", "--start", "1", "--no-cache")
	require.NoError(t, err)

	assert.Contains(t, out, "bfs: 1 2 3")
}

func TestReport_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n1 2\n"), 0o644))

	out, err := runCommand(t, "", "report", path, "--no-cache")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs: 1 2")
}

func TestReport_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	_, err := runCommand(t, "2\n1 2\n", "report", "--no-cache", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bfs: 1 2")
}

func TestReport_MalformedCount(t *testing.T) {
	_, err := runCommand(t, "x\n", "report", "--no-cache")
	assert.Error(t, err)
}

func TestWalk_Orders(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bfs default", []string{"walk", "--start", "1"}, "1 2 3 4\n"},
		{"dfs", []string{"walk", "--order", "dfs", "--start", "1"}, "1 2 4 3\n"},
	}
	// 1→2, 1→3, 2→4: BFS visits level by level, DFS dives through 2.
	const input = "4\n1 2\n1 3\n2 4\n"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWalk_RejectsUnknownOrder(t *testing.T) {
	_, err := runCommand(t, "2\n1 2\n", "walk", "--order", "sideways")
	assert.Error(t, err)
}

func TestComponents_Undirected(t *testing.T) {
	out, err := runCommand(t, "4\n1 2\n3 4\n", "components", "--undirected")
	require.NoError(t, err)

	assert.Contains(t, out, "component 1: 1 2")
	assert.Contains(t, out, "component 2: 3 4")
}

func TestCycle_ExitStatus(t *testing.T) {
	_, err := runCommand(t, "3\n1 2\n2 3\n3 1\n", "cycle", "-q")
	assert.Error(t, err, "cyclic graph should fail")

	_, err = runCommand(t, "3\n1 2\n2 3\n", "cycle", "-q")
	assert.NoError(t, err, "acyclic graph should succeed")
}

func TestDot_StdoutShape(t *testing.T) {
	out, err := runCommand(t, "2\n1 2\n", "dot")
	require.NoError(t, err)

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "1 -> 2")
}

func TestDot_UndirectedShape(t *testing.T) {
	out, err := runCommand(t, "2\n1 2\n", "dot", "--undirected")
	require.NoError(t, err)

	assert.Contains(t, out, "graph")
	assert.Contains(t, out, "1 -- 2")
}

func TestDot_RenderNeedsOutput(t *testing.T) {
	_, err := runCommand(t, "2\n1 2\n", "dot", "--format", "svg")
	assert.Error(t, err)
}

func TestCachePath_UsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "graphwalk.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[cache]\ndir = \""+dir+"\"\n"), 0o644))

	out, err := runCommand(t, "", "--config", cfgPath, "cache", "path")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", out)
}

func TestInferFormat(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"graph.svg", "svg"},
		{"graph.PNG", "png"},
		{"graph.dot", "dot"},
		{"", "dot"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inferFormat(tt.output), "output %q", tt.output)
	}
}
