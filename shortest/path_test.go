// SPDX-License-Identifier: MIT
package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

const none = shortest.None

func TestReconstruct_Chain(t *testing.T) {
	// 0 ← 1 ← 2 ← 3, vertex 4 unreached
	prev := []int{none, 0, 1, 2, none}

	path, err := shortest.Reconstruct(prev, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	path, err = shortest.Reconstruct(prev, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path, "source alone")
}

func TestReconstruct_Errors(t *testing.T) {
	_, err := shortest.Reconstruct([]int{none}, 1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = shortest.Reconstruct([]int{1, 0}, 0)
	assert.ErrorIs(t, err, shortest.ErrPredecessorCycle)

	_, err = shortest.Reconstruct([]int{none, 9}, 1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestReconstruct_LongChainIsIterative(t *testing.T) {
	const n = 200000
	prev := make([]int, n)
	prev[0] = none
	for i := 1; i < n; i++ {
		prev[i] = i - 1
	}
	path, err := shortest.Reconstruct(prev, n-1)
	require.NoError(t, err)
	require.Len(t, path, n)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, n-1, path[n-1])
}

func TestResult_PathTo(t *testing.T) {
	r := shortest.NewResult(4, 1)
	r.Dist[0] = shortest.Finite(2)
	r.Prev[0] = 1
	r.Dist[2] = shortest.Finite(5)
	r.Prev[2] = 0

	require.NoError(t, r.Validate())

	path, ok, err := r.PathTo(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 0, 2}, path)

	path, ok, err = r.PathTo(3)
	require.NoError(t, err, "unreachable is not an error")
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.False(t, r.Reachable(3))
	assert.False(t, r.Reachable(-1))

	_, _, err = r.PathTo(4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	d, err := r.DistanceTo(2)
	require.NoError(t, err)
	assert.Equal(t, shortest.Finite(5), d)
	_, err = r.DistanceTo(9)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestResult_ValidateRejects(t *testing.T) {
	var nilResult *shortest.Result
	assert.ErrorIs(t, nilResult.Validate(), shortest.ErrNilResult)

	r := shortest.NewResult(3, 0)
	r.Prev[2] = 1 // unreachable vertex with predecessor
	assert.ErrorIs(t, r.Validate(), shortest.ErrInconsistent)

	r = shortest.NewResult(3, 0)
	r.Dist[0] = shortest.Finite(1)
	assert.ErrorIs(t, r.Validate(), shortest.ErrInconsistent)

	r = shortest.NewResult(3, 0)
	r.Dist[2] = shortest.Finite(1) // reachable but chain ends at 2, not source
	assert.ErrorIs(t, r.Validate(), shortest.ErrInconsistent)

	r = shortest.NewResult(2, 0)
	r.Prev = r.Prev[:1]
	assert.ErrorIs(t, r.Validate(), shortest.ErrInconsistent)
}

func TestNamesAndPathWeight(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AssignCity(name, i))
	}
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	names, err := shortest.Names(g, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names)

	w, ok := shortest.PathWeight(g, []int{0, 1, 2})
	assert.True(t, ok)
	assert.Equal(t, shortest.Finite(5), w)

	_, ok = shortest.PathWeight(g, []int{2, 0})
	assert.False(t, ok)

	w, ok = shortest.PathWeight(g, []int{1})
	assert.True(t, ok)
	assert.Equal(t, shortest.Finite(0), w)

	_, err = shortest.Names(g, []int{0, 7})
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}
