// SPDX-License-Identifier: MIT

package shortest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
)

// None marks "no predecessor" in Result.Prev.
const None = -1

// Sentinel errors shared by the shortest-path packages.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to an algorithm.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrNilResult indicates a nil *Result was passed where one is required.
	ErrNilResult = errors.New("shortest: result is nil")

	// ErrPredecessorCycle indicates a predecessor walk that never reaches None.
	ErrPredecessorCycle = errors.New("shortest: predecessor table contains a cycle")

	// ErrInconsistent indicates a Result that violates its own invariants.
	ErrInconsistent = errors.New("shortest: inconsistent result")
)

// Result is the single-source output of every algorithm: Dist and Prev are
// parallel slices indexed by vertex.
type Result struct {
	Source int
	Dist   []Distance
	Prev   []int
}

// NewResult allocates a result for n vertices with every distance infinite,
// every predecessor None, and Dist[source] = 0.
// The caller guarantees 0 ≤ source < n.
func NewResult(n, source int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]Distance, n), // zero value = Infinite
		Prev:   make([]int, n),
	}
	for i := range r.Prev {
		r.Prev[i] = None
	}
	r.Dist[source] = Finite(0)

	return r
}

// Len returns the number of vertices covered by r.
func (r *Result) Len() int { return len(r.Dist) }

// DistanceTo returns Dist[target].
func (r *Result) DistanceTo(target int) (Distance, error) {
	if err := r.checkTarget(target); err != nil {
		return Infinite, err
	}

	return r.Dist[target], nil
}

// Reachable reports whether target has a finite distance.
// Out-of-range targets are unreachable.
func (r *Result) Reachable(target int) bool {
	return r.checkTarget(target) == nil && !r.Dist[target].IsInfinite()
}

// PathTo returns the vertex sequence Source..target.
// ok is false (and err nil) when target is unreachable.
func (r *Result) PathTo(target int) (path []int, ok bool, err error) {
	if err = r.checkTarget(target); err != nil {
		return nil, false, err
	}
	if r.Dist[target].IsInfinite() {
		return nil, false, nil
	}
	path, err = Reconstruct(r.Prev, target)
	if err != nil {
		return nil, false, err
	}
	if path[0] != r.Source {
		return nil, false, fmt.Errorf("%w: walk from %d ended at %d, not source %d",
			ErrInconsistent, target, path[0], r.Source)
	}

	return path, true, nil
}

// Validate checks the invariants listed in the package documentation.
// Complexity: O(V²) worst case (one bounded walk per vertex).
func (r *Result) Validate() error {
	if r == nil {
		return ErrNilResult
	}
	if len(r.Dist) != len(r.Prev) {
		return fmt.Errorf("%w: %d distances, %d predecessors", ErrInconsistent, len(r.Dist), len(r.Prev))
	}
	if err := r.checkTarget(r.Source); err != nil {
		return err
	}
	if d, ok := r.Dist[r.Source].Value(); !ok || d != 0 || r.Prev[r.Source] != None {
		return fmt.Errorf("%w: source %d has dist=%s prev=%d",
			ErrInconsistent, r.Source, r.Dist[r.Source], r.Prev[r.Source])
	}
	for v := range r.Dist {
		if r.Dist[v].IsInfinite() {
			if r.Prev[v] != None {
				return fmt.Errorf("%w: unreachable %d has predecessor %d", ErrInconsistent, v, r.Prev[v])
			}
			continue
		}
		if _, _, err := r.PathTo(v); err != nil {
			return err
		}
	}

	return nil
}

func (r *Result) checkTarget(target int) error {
	if target < 0 || target >= len(r.Dist) {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfRange, target, len(r.Dist))
	}

	return nil
}
