// SPDX-License-Identifier: MIT

// Package floydwarshall implements the all-pairs transitive-closure method
// and its projection onto a single source.
//
// AllPairs builds two dense V×V row-major matrices:
//
//	dist[i][j] – shortest known distance i→j (0 on the diagonal, Infinite if none)
//	next[i][j] – first hop on the way from i to j (i on the diagonal, None if none)
//
// Seeding walks g.Edges() in declaration order and WRITES each edge into its
// (from,to) cell, so for parallel edges the last declared one survives, even
// if an earlier one was cheaper. dijkstra and bellmanford relax every parallel
// edge instead; on multigraphs the methods may therefore disagree. Self-loops
// never overwrite the diagonal.
//
// Closure uses the fixed k → i → j loop order and strict improvement only;
// an improvement through k sets next[i][j] = next[i][k].
//
// Table.Project(source) reads row source of dist and derives each target's
// predecessor by walking the next-hop chain from source until the vertex just
// before the target. That walk costs O(path length) per target, O(V²) for the
// whole row, unlike the direct predecessor arrays of the other two methods.
//
// Complexity:
//
//   - AllPairs: Time O(V³), Space O(V²)
//   - Project:  Time O(V²) worst case, Space O(V)
package floydwarshall
