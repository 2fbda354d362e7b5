// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction, naming and edge contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disasteraid/core"
)

func TestNewGraph_Sizes(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	g, err = core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Edges())

	g, err = core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{"", "", ""}, g.Cities())
}

func TestAssignCity_Validation(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AssignCity(CityA, -1), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AssignCity(CityA, 2), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AssignCity("", 0), core.ErrEmptyCityName)

	require.NoError(t, g.AssignCity(CityA, 0))
	idx, err := g.Index(CityA)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	name, err := g.Name(0)
	require.NoError(t, err)
	assert.Equal(t, CityA, name)

	_, err = g.Name(1)
	assert.ErrorIs(t, err, core.ErrUnnamedVertex)
	_, err = g.Name(5)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestAssignCity_RebindIndexDropsOldName(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB)

	require.NoError(t, g.AssignCity(CityX, 0))

	_, err := g.Index(CityA)
	assert.ErrorIs(t, err, core.ErrUnknownCity, "old name must become unresolvable")
	assert.False(t, g.HasCity(CityA))

	idx, err := g.Index(CityX)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []string{CityX, CityB}, g.Cities())
}

func TestAssignCity_MovingNameUnbindsPreviousSlot(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB)

	require.NoError(t, g.AssignCity(CityA, 1))

	idx, err := g.Index(CityA)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.False(t, g.HasCity(CityB))

	_, err = g.Name(0)
	assert.ErrorIs(t, err, core.ErrUnnamedVertex)
	assert.Equal(t, []string{"", CityA}, g.Cities())

	// Same pair twice is a no-op.
	require.NoError(t, g.AssignCity(CityA, 1))
	assert.Equal(t, []string{"", CityA}, g.Cities())
}

func TestAddEdge_Validation(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB)

	assert.ErrorIs(t, g.AddEdge(CityA, CityX, 1), core.ErrUnknownCity)
	assert.ErrorIs(t, g.AddEdge(CityX, CityA, 1), core.ErrUnknownCity)
	assert.ErrorIs(t, g.AddEdge(CityA, CityB, -1), core.ErrNegativeWeight)
	assert.Zero(t, g.EdgeCount(), "rejected edges must not be stored")

	require.NoError(t, g.AddEdge(CityA, CityB, 0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_ParallelAndLoopsKept(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB)

	require.NoError(t, g.AddEdge(CityA, CityB, 5))
	require.NoError(t, g.AddEdge(CityA, CityB, 3))
	require.NoError(t, g.AddEdge(CityA, CityA, 2))
	require.NoError(t, g.AddEdge(CityB, CityA, 9))

	want := []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 0, Weight: 2},
		{From: 1, To: 0, Weight: 9},
	}
	assert.Equal(t, want, g.Edges())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, want[:3], nbs)

	w, ok := g.MinWeight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(3), w)

	_, ok = g.MinWeight(1, 1)
	assert.False(t, ok)
	_, ok = g.MinWeight(0, 7)
	assert.False(t, ok)
}

func TestAddEdgeByIndex(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdgeByIndex(0, 2, 1), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdgeByIndex(-1, 0, 1), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdgeByIndex(0, 1, -4), core.ErrNegativeWeight)
	require.NoError(t, g.AddEdgeByIndex(0, 1, 4))
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 4}}, g.Edges())
}

func TestQueries_ReturnCopies(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB)
	require.NoError(t, g.AddEdge(CityA, CityB, 1))

	edges := g.Edges()
	edges[0].Weight = 100
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbs[0].Weight = 100
	cities := g.Cities()
	cities[0] = "mutated"

	w, ok := g.MinWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), w)
	assert.Equal(t, CityA, g.Cities()[0])

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestStats(t *testing.T) {
	g := newNamedGraph(t, CityA, CityB, CityC, CityD)
	require.NoError(t, g.AddEdge(CityA, CityB, 1))
	require.NoError(t, g.AddEdge(CityA, CityB, 2))
	require.NoError(t, g.AddEdge(CityB, CityB, 0))
	require.NoError(t, g.AddEdge(CityB, CityC, 0))

	assert.Equal(t, core.Stats{
		VertexCount:    4,
		NamedVertices:  4,
		EdgeCount:      4,
		SelfLoops:      1,
		ParallelEdges:  1,
		IsolatedCities: 1,
	}, g.Stats())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "0→2(7)", core.Edge{From: 0, To: 2, Weight: 7}.String())
}
