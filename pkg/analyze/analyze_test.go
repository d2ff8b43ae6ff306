package analyze

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-dian-tian/graphwalk/pkg/cache"
	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// triangle is a directed 1→2→3→1 over four vertices, leaving 4
// isolated so the report exercises the coverage scan too.
const triangle = "4\n1 2\n2 3\n3 1\n"

func TestRun_DriverSequence(t *testing.T) {
	g, err := graph.Load(strings.NewReader(triangle), true)
	require.NoError(t, err)

	rep := Run(g, 0)

	assert.Equal(t, 4, rep.N)
	assert.True(t, rep.Directed)
	assert.Equal(t, 2, rep.Start, "default start is n/2")
	assert.Equal(t, []int{2, 3, 1, 4}, rep.BFS)
	assert.Equal(t, []int{2, 3, 1, 4}, rep.DFS)
	assert.Equal(t, [][]int{{1, 2, 3}, {4}}, rep.Components)
	assert.True(t, rep.HasCycle)
}

func TestRun_ExplicitStart(t *testing.T) {
	g, err := graph.Load(strings.NewReader(triangle), true)
	require.NoError(t, err)

	rep := Run(g, 3)
	assert.Equal(t, 3, rep.Start)
	assert.Equal(t, []int{3, 1, 2, 4}, rep.BFS)
}

func TestRun_UndirectedPath(t *testing.T) {
	g, err := graph.Load(strings.NewReader("3 1 2 2 3"), false)
	require.NoError(t, err)

	rep := Run(g, 1)
	assert.False(t, rep.HasCycle)
	assert.Equal(t, [][]int{{1, 2, 3}}, rep.Components)
}

func TestAnalyze_CachesSecondRun(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil)
	ctx := context.Background()

	first, cached, err := r.Analyze(ctx, []byte(triangle), Options{Directed: true})
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := r.Analyze(ctx, []byte(triangle), Options{Directed: true})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)
}

func TestAnalyze_RefreshBypassesLookup(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil)
	ctx := context.Background()

	_, _, err = r.Analyze(ctx, []byte(triangle), Options{Directed: true})
	require.NoError(t, err)

	_, cached, err := r.Analyze(ctx, []byte(triangle), Options{Directed: true, Refresh: true})
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestAnalyze_OptionsSplitCacheKeys(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil)
	ctx := context.Background()

	_, _, err = r.Analyze(ctx, []byte(triangle), Options{Directed: true})
	require.NoError(t, err)

	// Same input, different directedness: must not hit the cached run.
	rep, cached, err := r.Analyze(ctx, []byte(triangle), Options{Directed: false})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.False(t, rep.Directed)
}

func TestAnalyze_InvalidInput(t *testing.T) {
	r := NewRunner(nil, nil)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad count", "nope 1 2"},
		{"edge out of range", "2 1 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := r.Analyze(context.Background(), []byte(tt.input), Options{Directed: true})
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
		})
	}
}

func TestAnalyze_NullRunnerDoesNotCache(t *testing.T) {
	r := NewRunner(nil, nil)
	ctx := context.Background()

	_, cached, err := r.Analyze(ctx, []byte(triangle), Options{Directed: true, CacheTTL: time.Hour})
	require.NoError(t, err)
	assert.False(t, cached)

	_, cached, err = r.Analyze(ctx, []byte(triangle), Options{Directed: true})
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestWriteText(t *testing.T) {
	rep := Report{
		BFS:        []int{2, 3, 1, 4},
		DFS:        []int{2, 3, 1, 4},
		Components: [][]int{{1, 2, 3}, {4}},
		HasCycle:   true,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep))

	want := "bfs: 2 3 1 4\ndfs: 2 3 1 4\ncomponent 1: 1 2 3\ncomponent 2: 4\nCycle detected.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_AcyclicOmitsCycleLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Report{BFS: []int{1}, DFS: []int{1}, Components: [][]int{{1}}}))
	assert.NotContains(t, buf.String(), "Cycle")
}
