package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents_UndirectedTwoGroups(t *testing.T) {
	// 1-2   3-4  →  exactly {1,2} and {3,4}, ascending root order.
	g, err := Load(strings.NewReader("4 1 2 3 4"), false)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Components())
}

func TestComponents_SingleComponent(t *testing.T) {
	g, err := Load(strings.NewReader("3 1 2 2 3"), false)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2, 3}}, g.Components())
}

func TestComponents_IsolatedVertices(t *testing.T) {
	g, err := New(3, false)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1}, {2}, {3}}, g.Components())
}

func TestComponents_DirectedFollowsEdgeDirection(t *testing.T) {
	// 2→1: scanning ascending, vertex 1 roots a component that cannot
	// reach 2, so the grouping is {1},{2} even though the vertices are
	// weakly connected. Known semantic caveat, preserved deliberately.
	g, err := New(2, true)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 1, 0))

	assert.Equal(t, [][]int{{1}, {2}}, g.Components())
}

func TestComponents_ResetsPriorTraversalState(t *testing.T) {
	g, err := Load(strings.NewReader("4 1 2 3 4"), false)
	require.NoError(t, err)

	require.Len(t, g.BFSOrder(1), 4) // leave markers dirty
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Components())
}

func TestComponents_Empty(t *testing.T) {
	g, err := New(0, false)
	require.NoError(t, err)
	assert.Nil(t, g.Components())
}
