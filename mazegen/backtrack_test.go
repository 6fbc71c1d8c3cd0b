package mazegen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/mazegen"
	"github.com/katalvlaran/lvmaze/nodegraph"
)

// TestBacktrack_Errors rejects empty dimensions.
func TestBacktrack_Errors(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := mazegen.Backtrack(dims[0], dims[1])
		assert.True(t, errors.Is(err, mazegen.ErrTooSmall), "dims %v: %v", dims, err)
	}
}

// TestBacktrack_PerfectMaze checks layout, cell count and that the node graph
// of a loop-free maze is a spanning tree containing a solvable path.
func TestBacktrack_PerfectMaze(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		g, err := mazegen.Backtrack(12, 9, mazegen.WithSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, 25, g.Rows())
		assert.Equal(t, 19, g.Cols())
		assert.Equal(t, g.Index(0, 1), g.Start())
		assert.Equal(t, g.Index(24, 17), g.End())
		// 108 logical cells, 107 carved passages, START and END.
		assert.Equal(t, 2*12*9+1, g.Traversable())

		gr, err := nodegraph.Build(g)
		require.NoError(t, err)
		assert.Equal(t, gr.Len()-1, gr.EdgeCount(), "seed %d: not a tree", seed)

		_, err = dijkstra.ShortestPath(gr)
		require.NoError(t, err)
	}
}

// TestBacktrack_Deterministic verifies that equal seeds give equal mazes.
func TestBacktrack_Deterministic(t *testing.T) {
	a, err := mazegen.Backtrack(10, 10, mazegen.WithSeed(7))
	require.NoError(t, err)
	b, err := mazegen.Backtrack(10, 10, mazegen.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Cells(), b.Cells())

	c, err := mazegen.Backtrack(10, 10, mazegen.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Cells(), c.Cells())
}

// TestBacktrack_Loops verifies that wall removal adds cycles.
func TestBacktrack_Loops(t *testing.T) {
	g, err := mazegen.Backtrack(15, 15, mazegen.WithSeed(3), mazegen.WithLoops(0.3))
	require.NoError(t, err)
	gr, err := nodegraph.Build(g)
	require.NoError(t, err)
	assert.Greater(t, gr.EdgeCount(), gr.Len()-1)
	assert.Greater(t, g.Traversable(), 2*15*15+1)
}

// TestOptions_Panics covers invalid option arguments.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mazegen.WithRand(nil) })
	assert.Panics(t, func() { mazegen.WithLoops(-0.1) })
	assert.Panics(t, func() { mazegen.WithLoops(1.5) })
	assert.NotPanics(t, func() { mazegen.WithLoops(1) })
}

// TestBacktrack_SingleCell builds the smallest maze.
func TestBacktrack_SingleCell(t *testing.T) {
	g, err := mazegen.Backtrack(1, 1)
	require.NoError(t, err)
	gr, err := nodegraph.Build(g)
	require.NoError(t, err)
	p, err := dijkstra.ShortestPath(gr)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, p.Cells)
	assert.Equal(t, int64(2), p.Distance)
}
