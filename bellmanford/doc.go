// SPDX-License-Identifier: MIT

// Package bellmanford implements the full edge-relaxation method for
// single-source shortest paths over a core.Graph.
//
// Algorithm:
//
//   - Distances start infinite except the source (0); predecessors start None.
//   - Exactly V-1 passes relax every edge of g.Edges() in declaration order.
//   - A final verification pass looks for an edge that could still be relaxed;
//     finding one means a negative cycle reachable from the source and the
//     run fails with ErrNegativeCycle instead of returning wrong distances.
//
// core.Graph rejects negative weights, so with graphs built through core the
// verification pass never fires. It stays so the method keeps its usual
// contract if the graph model ever admits negative roads.
//
// Complexity:
//
//   - Time:  O(V·E)  (plus one O(E) verification pass)
//   - Space: O(V)
//
// WithEarlyExit() stops the passes once one of them relaxes nothing; results
// are identical, only the work differs.
package bellmanford
