// SPDX-License-Identifier: MIT

// Package shortest holds what the single-source shortest-path algorithms
// (dijkstra, bellmanford, floydwarshall) have in common: the Distance value,
// the (distance, predecessor) Result, and path reconstruction.
//
// Distance is an optional integer. Its zero value is infinite, so a freshly
// allocated []Distance already means "nothing reached yet", and Add never
// overflows into a bogus finite value.
//
// Result invariants (checked by Result.Validate):
//
//   - Dist[Source] is finite 0 and Prev[Source] == None.
//   - Dist[v] infinite ⇔ v unreachable; then Prev[v] == None.
//   - Following Prev from any reachable v ends at Source without repeating a vertex.
//
// Reconstruct walks the predecessor table iteratively and reverses the walk,
// so long chains never grow the goroutine stack.
package shortest
