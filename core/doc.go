// SPDX-License-Identifier: MIT

// Package core provides the city network used by every routing algorithm:
// a directed, weighted multigraph over a FIXED set of vertex slots, each slot
// bound to a city name.
//
// The Graph G = (V,E) has these properties:
//
//   - V is fixed by NewGraph(vertexCount); vertices are the integer slots 0..V-1.
//   - Each slot is bound to a city name with AssignCity; the name↔index mapping
//     is kept bijective (rebinding an index drops its old name, binding a name
//     held elsewhere moves it).
//   - Edges are ordered triples (from, to, weight) with weight ≥ 0.
//     Parallel edges and self-loops are kept as declared; nothing is merged.
//   - Edges() preserves declaration order; Neighbors(i) preserves the order in
//     which i's outgoing edges were declared.
//   - A single sync.RWMutex guards catalog, edge list and adjacency, so a fully
//     built graph may be read by several algorithms at once.
//
// Core Methods:
//
//	// Construction
//	NewGraph(vertexCount int) (*Graph, error)           // O(V)
//	AssignCity(name string, index int) error            // O(1)
//	AddEdge(from, to string, weight int64) error        // O(1) amortized
//	AddEdgeByIndex(from, to int, weight int64) error    // O(1) amortized
//
//	// Query
//	Index(name string) (int, error)                     // O(1)
//	Name(index int) (string, error)                     // O(1)
//	HasCity(name string) bool                           // O(1)
//	Cities() []string                                   // O(V)
//	Neighbors(index int) ([]Edge, error)                // O(deg)
//	Edges() []Edge                                      // O(E)
//	MinWeight(from, to int) (int64, bool)               // O(deg)
//	VertexCount() int / EdgeCount() int                 // O(1)
//	Stats() Stats                                       // O(V)
//
// Errors:
//
//	ErrInvalidSize     – negative vertex count
//	ErrIndexOutOfRange – vertex index outside [0, V)
//	ErrUnknownCity     – city name never bound (or rebound away)
//	ErrNegativeWeight  – edge weight < 0
//	ErrEmptyCityName   – AssignCity with ""
//	ErrUnnamedVertex   – Name(i) for a slot that has no city bound
package core
