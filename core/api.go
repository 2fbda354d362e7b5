// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.

package core

// Stats produces a deterministic snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire mu read lock; count named slots.
//   - Stage 2: Single pass over edges classifying loops and parallels,
//     marking every endpoint as touched.
//   - Stage 3: Count named slots that no edge touches.
//
// Complexity:
//   - Time O(V+E), Space O(V+E) for the pair/touch sets.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := Stats{
		VertexCount: g.vertexCount,
		EdgeCount:   len(g.edges),
	}
	for _, name := range g.indexToCity {
		if name != "" {
			st.NamedVertices++
		}
	}

	type pair struct{ from, to int }
	seen := make(map[pair]struct{}, len(g.edges))
	touched := make([]bool, g.vertexCount)
	for _, e := range g.edges {
		if e.From == e.To {
			st.SelfLoops++
		}
		p := pair{e.From, e.To}
		if _, dup := seen[p]; dup {
			st.ParallelEdges++
		} else {
			seen[p] = struct{}{}
		}
		touched[e.From] = true
		touched[e.To] = true
	}
	for i, name := range g.indexToCity {
		if name != "" && !touched[i] {
			st.IsolatedCities++
		}
	}

	return st
}
