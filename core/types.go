// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Stats types, sentinel errors, the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a negative vertex count was requested.
	ErrInvalidSize = errors.New("core: vertex count must be non-negative")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrUnknownCity indicates a city name that is not bound to any vertex.
	ErrUnknownCity = errors.New("core: unknown city")

	// ErrNegativeWeight indicates an edge declared with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEmptyCityName indicates AssignCity was called with an empty name.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrUnnamedVertex indicates a vertex slot with no city bound to it.
	ErrUnnamedVertex = errors.New("core: vertex has no city name")
)

// Edge is one directed road of the network.
//
// From and To are vertex indices; Weight is the travel cost (never negative
// once stored in a Graph).
type Edge struct {
	From   int
	To     int
	Weight int64
}

// String renders the edge as "from→to(weight)" using vertex indices.
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// Graph is a directed weighted multigraph over a fixed vertex set.
//
// cityToIndex and indexToCity are kept mutually consistent: every entry of
// one has exactly one mirror entry in the other.
type Graph struct {
	mu sync.RWMutex // guards everything below

	vertexCount int

	cityToIndex map[string]int // city name → vertex index
	indexToCity []string       // vertex index → city name ("" = unnamed)

	edges     []Edge   // declaration order
	adjacency [][]Edge // adjacency[from] = outgoing edges, declaration order
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	VertexCount    int // fixed number of vertex slots
	NamedVertices  int // slots with a city bound
	EdgeCount      int // edges declared, parallel edges counted individually
	SelfLoops      int // edges with From == To
	ParallelEdges  int // edges whose (From,To) pair was already declared before
	IsolatedCities int // named vertices with neither outgoing nor incoming edges
}

// NewGraph allocates a graph with vertex slots 0..vertexCount-1 and no edges.
//
// Errors:
//   - ErrInvalidSize if vertexCount < 0.
//
// Complexity: O(V).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, vertexCount)
	}

	return &Graph{
		vertexCount: vertexCount,
		cityToIndex: make(map[string]int, vertexCount),
		indexToCity: make([]string, vertexCount),
		edges:       make([]Edge, 0),
		adjacency:   make([][]Edge, vertexCount),
	}, nil
}
