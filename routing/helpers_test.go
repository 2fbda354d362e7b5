// SPDX-License-Identifier: MIT

package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disasteraid/core"
)

type road struct {
	from, to string
	w        int64
}

func buildGraph(t *testing.T, names []string, roads ...road) *core.Graph {
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

// triangle: A→B 4, B→C 3, A→C 10.
func triangle(t *testing.T) *core.Graph {
	return buildGraph(t, []string{"A", "B", "C"},
		road{"A", "B", 4}, road{"B", "C", 3}, road{"A", "C", 10})
}
