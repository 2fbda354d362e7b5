// SPDX-License-Identifier: MIT
// Package dijkstra_test validates the priority-queue relaxation method:
// input validation, distances, predecessors, thresholds and degenerate graphs.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/dijkstra"
	"github.com/katalvlaran/disasteraid/shortest"
)

type road struct {
	from, to string
	w        int64
}

// buildGraph binds names to slots in order and declares roads.
func buildGraph(t *testing.T, names []string, roads []road) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(names))
	require.NoError(t, err)
	for i, n := range names {
		require.NoError(t, g.AssignCity(n, i))
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r.from, r.to, r.w))
	}

	return g
}

func dists(vals ...int64) []shortest.Distance {
	out := make([]shortest.Distance, len(vals))
	for i, v := range vals {
		if v < 0 {
			out[i] = shortest.Infinite
			continue
		}
		out[i] = shortest.Finite(v)
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, shortest.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	_, err := dijkstra.Dijkstra(g, 1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(empty, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []road{
		{"A", "B", 4}, {"B", "C", 3}, {"A", "C", 10},
	})

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.NoError(t, res.Validate())

	assert.Equal(t, dists(0, 4, 7), res.Dist)
	assert.Equal(t, []int{shortest.None, 0, 1}, res.Prev)

	path, ok, err := res.PathTo(2)
	require.NoError(t, err)
	require.True(t, ok)
	names, err := shortest.Names(g, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestDijkstra_DirectedOnly(t *testing.T) {
	// Roads are one-way: from C nothing is reachable.
	g := buildGraph(t, []string{"A", "B", "C"}, []road{
		{"A", "B", 1}, {"B", "C", 1},
	})
	res, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, dists(-1, -1, 0), res.Dist)
	assert.Equal(t, []int{shortest.None, shortest.None, shortest.None}, res.Prev)
}

func TestDijkstra_ParallelEdgesCheapestWins(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []road{
		{"A", "B", 3}, {"A", "B", 9},
	})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dists(0, 3), res.Dist)

	g = buildGraph(t, []string{"A", "B"}, []road{
		{"A", "B", 9}, {"A", "B", 3},
	})
	res, err = dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dists(0, 3), res.Dist, "declaration order must not matter")
}

func TestDijkstra_StaleEntriesSkipped(t *testing.T) {
	// B is first pushed at 10 then improved to 2 via C; the stale 10 entry is ignored.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []road{
		{"A", "B", 10}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 1},
	})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dists(0, 2, 1, 3), res.Dist)
	assert.Equal(t, []int{shortest.None, 2, 0, 1}, res.Prev)
}

func TestDijkstra_ZeroWeightsAndSelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []road{
		{"A", "A", 0}, {"A", "B", 0}, {"B", "A", 0},
	})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.NoError(t, res.Validate())
	assert.Equal(t, dists(0, 0), res.Dist)
	assert.Equal(t, shortest.None, res.Prev[0])
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []road{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1},
	})

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.NoError(t, res.Validate())
	assert.Equal(t, dists(0, 1, -1, -1), res.Dist)

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, dists(0, -1, -1, -1), res.Dist)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []road{
		{"A", "B", 2}, {"B", "C", 4}, {"A", "C", 5},
	})

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dists(0, 2, 5), res.Dist)

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, dists(0, 2, 6), res.Dist, "A→C(5) is closed")

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, dists(0, -1, -1), res.Dist, "every road closed")
}

// ------------------------------------------------------------------------
// 4. Degenerate inputs
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := buildGraph(t, []string{"Solo"}, nil)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dists(0), res.Dist)
	assert.Equal(t, []int{shortest.None}, res.Prev)
}

func TestDijkstra_TwoUnconnected(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, nil)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.True(t, res.Dist[1].IsInfinite())
	_, ok, err := res.PathTo(1)
	require.NoError(t, err)
	assert.False(t, ok)
}
