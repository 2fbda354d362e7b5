// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// BellmanFord computes shortest distances and predecessors from source to
// every vertex of g by repeated relaxation of the whole edge list.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (shortest.ErrNilGraph).
//  2. source must be a valid vertex (wrapped core.ErrIndexOutOfRange).
//
// Returns ErrNegativeCycle (and no result) when the verification pass can
// still improve a distance.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	if err := g.ValidIndex(source); err != nil {
		return nil, fmt.Errorf("bellmanford: source: %w", err)
	}

	V := g.VertexCount()
	edges := g.Edges() // one snapshot for every pass
	res := shortest.NewResult(V, source)

	for pass := 1; pass < V; pass++ {
		if changed := relaxAll(res, edges); !changed && cfg.EarlyExit {
			break
		}
	}

	// Verification pass.
	for _, e := range edges {
		if improves(res, e) {
			return nil, fmt.Errorf("%w: edge %s still relaxes", ErrNegativeCycle, e)
		}
	}

	return res, nil
}

// relaxAll performs one pass over edges and reports whether anything changed.
func relaxAll(res *shortest.Result, edges []core.Edge) bool {
	changed := false
	for _, e := range edges {
		if !improves(res, e) {
			continue
		}
		res.Dist[e.To] = res.Dist[e.From].Add(e.Weight)
		res.Prev[e.To] = e.From
		changed = true
	}

	return changed
}

// improves reports whether going through e is strictly shorter than the
// current distance of e.To. Edges leaving an unreached vertex never improve.
func improves(res *shortest.Result, e core.Edge) bool {
	if res.Dist[e.From].IsInfinite() {
		return false
	}
	nd := res.Dist[e.From].Add(e.Weight)

	return nd.Less(res.Dist[e.To])
}
