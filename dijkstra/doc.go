// SPDX-License-Identifier: MIT

// Package dijkstra implements the priority-queue relaxation method for
// single-source shortest paths over a core.Graph.
//
// Overview:
//
//   - Every vertex starts at an infinite tentative distance except the source (0).
//   - A min-heap ordered by tentative distance is seeded with the source.
//   - The closest unfinished vertex is popped, its outgoing edges are relaxed,
//     and every improved neighbor is pushed again (lazy decrease-key).
//   - A popped entry whose recorded distance exceeds the vertex's current best
//     is stale and skipped.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one entry (up to E pushes).
//   - Space: O(V + E): distance and predecessor slices plus worst-case heap size.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d are left unexplored (infinite).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are treated as closed roads.
//
// Error handling (sentinel errors):
//
//   - shortest.ErrNilGraph: nil graph.
//   - core.ErrIndexOutOfRange (wrapped): source outside [0, V).
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors.
//
// Parallel edges are all relaxed, so the cheapest one wins implicitly.
// The graph is only read; several runs may share one graph.
package dijkstra
