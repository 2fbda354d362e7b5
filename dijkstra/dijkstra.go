// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (shortest.ErrNilGraph).
//  2. source must be a valid vertex (wrapped core.ErrIndexOutOfRange).
//
// Edge weights are non-negative by core.Graph construction, so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	if err := g.ValidIndex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res:     shortest.NewResult(V, source),
		done:    make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // read-only input
	options Options          // thresholds
	res     *shortest.Result // distances + predecessors handed back to the caller
	done    []bool           // finalized vertices
	pq      nodePQ           // lazy min-heap
}

// init seeds the heap with the source at distance 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process pops the closest vertex until the heap is empty or the closest
// vertex lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: a shorter distance was pushed after this one.
		if best, _ := r.res.Dist[u].Value(); r.done[u] || item.dist > best {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.done[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every outgoing edge of u; improvements update distance and
// predecessor and push a fresh heap entry.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue // closed road
		}
		v := e.To
		nd := r.res.Dist[u].Add(e.Weight)
		newDist, finite := nd.Value()
		if !finite || newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-length alternatives keep the first predecessor found.
		if !nd.Less(r.res.Dist[v]) {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is one heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist; ties by vertex index so
// pop order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
