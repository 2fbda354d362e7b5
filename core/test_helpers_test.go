// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disasteraid/core"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityX = "X"
)

// newNamedGraph builds a graph with one slot per name, bound in order.
func newNamedGraph(t testing.TB, names ...string) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(len(names))
	require.NoError(t, err)
	for i, name := range names {
		require.NoError(t, g.AssignCity(name, i))
	}

	return g
}
