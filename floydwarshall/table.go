// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// Table is the closed all-pairs result. It is immutable once AllPairs returns.
type Table struct {
	n    int
	dist *distMatrix
	next *hopMatrix
}

// Size returns V.
func (t *Table) Size() int { return t.n }

// Distance returns the shortest distance i→j.
func (t *Table) Distance(i, j int) (shortest.Distance, error) {
	if err := t.check(i, j); err != nil {
		return shortest.Infinite, err
	}

	return t.dist.at(i, j), nil
}

// NextHop returns the first vertex after i on the way to j, i itself when
// i == j, or shortest.None when j is unreachable from i.
func (t *Table) NextHop(i, j int) (int, error) {
	if err := t.check(i, j); err != nil {
		return shortest.None, err
	}

	return t.next.at(i, j), nil
}

// Path follows next hops from i to j. ok is false when j is unreachable.
func (t *Table) Path(i, j int) (path []int, ok bool, err error) {
	if err = t.check(i, j); err != nil {
		return nil, false, err
	}
	if t.dist.at(i, j).IsInfinite() {
		return nil, false, nil
	}

	path = append(path, i)
	for cur := i; cur != j; {
		cur = t.next.at(cur, j)
		if cur == shortest.None || len(path) > t.n {
			return nil, false, fmt.Errorf("%w: next-hop chain %d→%d", shortest.ErrPredecessorCycle, i, j)
		}
		path = append(path, cur)
	}

	return path, true, nil
}

// Project extracts the single-source result for source.
//
// For each reachable target j ≠ source the predecessor is found by starting at
// source and stepping through next[cur][j] while that hop is neither j nor
// None; the vertex reached last is j's predecessor. A hop of None before j is
// reached leaves the predecessor None.
//
// Complexity: O(V²) worst case.
func (t *Table) Project(source int) (*shortest.Result, error) {
	if err := t.check(source, source); err != nil {
		return nil, fmt.Errorf("floydwarshall: source: %w", err)
	}

	res := shortest.NewResult(t.n, source)
	res.Dist = t.dist.row(source)

	for j := 0; j < t.n; j++ {
		if j == source || res.Dist[j].IsInfinite() {
			continue
		}
		cur, steps := source, 0
		for {
			hop := t.next.at(cur, j)
			if hop == j {
				res.Prev[j] = cur
				break
			}
			if hop == shortest.None {
				break // no step reaches j
			}
			if steps++; steps > t.n {
				return nil, fmt.Errorf("%w: next-hop walk %d→%d", shortest.ErrPredecessorCycle, source, j)
			}
			cur = hop
		}
	}

	return res, nil
}

func (t *Table) check(i, j int) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfRange, i, t.n)
	}
	if j < 0 || j >= t.n {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfRange, j, t.n)
	}

	return nil
}
