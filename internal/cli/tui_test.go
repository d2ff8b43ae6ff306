package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

func stepGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, true)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))
	return g
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWalkModel_AdvanceAndBack(t *testing.T) {
	g := stepGraph(t)
	m := newWalkModel(g, "bfs", 1, g.BFSOrder(1))
	assert.Equal(t, 0, m.cursor)

	next, _ := m.Update(key("n"))
	m = next.(walkModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(key("n"))
	m = next.(walkModel)
	assert.Equal(t, 2, m.cursor)

	next, _ = m.Update(key("p"))
	m = next.(walkModel)
	assert.Equal(t, 1, m.cursor)
}

func TestWalkModel_CursorStaysInBounds(t *testing.T) {
	g := stepGraph(t)
	m := newWalkModel(g, "bfs", 1, g.BFSOrder(1))

	next, _ := m.Update(key("p"))
	m = next.(walkModel)
	assert.Equal(t, 0, m.cursor, "backing up at the start is a no-op")

	next, _ = m.Update(key("a"))
	m = next.(walkModel)
	assert.Equal(t, 3, m.cursor)

	next, _ = m.Update(key("n"))
	m = next.(walkModel)
	assert.Equal(t, 3, m.cursor, "advancing past the end is a no-op")
}

func TestWalkModel_QuitKeys(t *testing.T) {
	g := stepGraph(t)
	m := newWalkModel(g, "bfs", 1, g.BFSOrder(1))

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWalkModel_ViewShowsProgress(t *testing.T) {
	g := stepGraph(t)
	m := newWalkModel(g, "dfs", 1, g.DFSOrder(1))

	assert.Contains(t, m.View(), "[0/3]")

	next, _ := m.Update(key("a"))
	m = next.(walkModel)

	view := m.View()
	assert.Contains(t, view, "[3/3]")
	assert.Contains(t, view, "done")
	assert.Contains(t, view, "DFS from vertex 1")
}
