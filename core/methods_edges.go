// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge declaration and edge/adjacency queries.
//
// Determinism:
//   - Edges() returns edges in declaration order.
//   - Neighbors(i) returns i's outgoing edges in declaration order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//   - Query results are copies; callers may keep them after further mutation.

package core

import "fmt"

// AddEdge declares a directed road from→to with the given weight.
//
// Steps:
//  1. Reject weight < 0 (ErrNegativeWeight).
//  2. Resolve both names (ErrUnknownCity).
//  3. Append (fromIndex, toIndex, weight) to the edge list and to adjacency[fromIndex].
//
// Parallel edges and self-loops are accepted and never merged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %q→%q weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := g.indexLocked(from)
	if err != nil {
		return err
	}
	v, err := g.indexLocked(to)
	if err != nil {
		return err
	}
	g.appendEdgeLocked(Edge{From: u, To: v, Weight: weight})

	return nil
}

// AddEdgeByIndex declares a directed road between two vertex slots.
// Slots do not need a city name; weight must be non-negative.
//
// Errors:
//   - ErrNegativeWeight: if weight < 0.
//   - ErrIndexOutOfRange: if either index is outside [0, VertexCount()).
func (g *Graph) AddEdgeByIndex(from, to int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkIndexLocked(from); err != nil {
		return err
	}
	if err := g.checkIndexLocked(to); err != nil {
		return err
	}
	g.appendEdgeLocked(Edge{From: from, To: to, Weight: weight})

	return nil
}

// appendEdgeLocked stores e in both the edge list and the adjacency of e.From.
func (g *Graph) appendEdgeLocked(e Edge) {
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
}

// Edges returns a copy of all edges in declaration order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of declared edges (parallel edges counted individually).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns a copy of the outgoing edges of index, in declaration order.
//
// Errors:
//   - ErrIndexOutOfRange: if index is outside [0, VertexCount()).
//
// Complexity: O(deg(index)).
func (g *Graph) Neighbors(index int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndexLocked(index); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adjacency[index]))
	copy(out, g.adjacency[index])

	return out, nil
}

// MinWeight returns the cheapest weight among the parallel edges from→to.
// ok is false when no such edge exists or an index is invalid.
//
// Complexity: O(deg(from)).
func (g *Graph) MinWeight(from, to int) (weight int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkIndexLocked(from) != nil || g.checkIndexLocked(to) != nil {
		return 0, false
	}
	for _, e := range g.adjacency[from] {
		if e.To != to {
			continue
		}
		if !ok || e.Weight < weight {
			weight, ok = e.Weight, true
		}
	}

	return weight, ok
}
