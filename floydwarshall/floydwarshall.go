// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// AllPairs computes the all-pairs distance and next-hop tables of g.
//
// Errors:
//   - shortest.ErrNilGraph if g is nil.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}

	n := g.VertexCount()
	t := &Table{
		n:    n,
		dist: newDistMatrix(n),
		next: newHopMatrix(n),
	}
	t.seed(g.Edges())
	t.close()

	return t, nil
}

// SingleSource runs AllPairs on g and projects the row of source.
//
// Errors:
//   - shortest.ErrNilGraph if g is nil.
//   - wrapped core.ErrIndexOutOfRange if source is not a vertex of g;
//     checked before the O(V³) closure runs.
func SingleSource(g *core.Graph, source int) (*shortest.Result, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	if err := g.ValidIndex(source); err != nil {
		return nil, fmt.Errorf("floydwarshall: source: %w", err)
	}
	t, err := AllPairs(g)
	if err != nil {
		return nil, err
	}

	return t.Project(source)
}

// seed writes every edge into its cell; the last parallel edge wins.
func (t *Table) seed(edges []core.Edge) {
	for _, e := range edges {
		if e.From == e.To {
			continue // diagonal stays 0
		}
		t.dist.set(e.From, e.To, shortest.Finite(e.Weight))
		t.next.set(e.From, e.To, e.To)
	}
}

// close runs the k → i → j relaxation in place.
func (t *Table) close() {
	n := t.n
	var (
		k, i, j int
		ik, cand shortest.Distance
	)
	for k = 0; k < n; k++ { // intermediate vertex
		for i = 0; i < n; i++ { // source row
			ik = t.dist.at(i, k)
			if ik.IsInfinite() {
				continue // no path i→k, nothing improves through k
			}
			for j = 0; j < n; j++ { // destination column
				cand = ik.Plus(t.dist.at(k, j))
				if cand.Less(t.dist.at(i, j)) {
					t.dist.set(i, j, cand)
					t.next.set(i, j, t.next.at(i, k))
				}
			}
		}
	}
}
