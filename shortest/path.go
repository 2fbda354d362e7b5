// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"

	"github.com/katalvlaran/disasteraid/core"
)

// NameLookup resolves a vertex index to its city name; *core.Graph satisfies it.
type NameLookup interface {
	Name(index int) (string, error)
}

// Reconstruct returns the vertices from the root of target's predecessor
// chain to target, inclusive.
//
// The walk follows prev from target until a vertex whose predecessor is None,
// then reverses. A target whose predecessor is None yields [target].
// At most len(prev) steps are taken; a longer walk means prev has a cycle.
//
// Complexity: O(path length).
func Reconstruct(prev []int, target int) ([]int, error) {
	n := len(prev)
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfRange, target, n)
	}

	path := make([]int, 0, 8)
	for v, steps := target, 0; v != None; v, steps = prev[v], steps+1 {
		if steps == n {
			return nil, fmt.Errorf("%w: walking back from %d", ErrPredecessorCycle, target)
		}
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: predecessor %d not in [0,%d)", core.ErrIndexOutOfRange, v, n)
		}
		path = append(path, v)
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Names maps a vertex path to city names.
func Names(g NameLookup, path []int) ([]string, error) {
	out := make([]string, len(path))
	for i, v := range path {
		name, err := g.Name(v)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}

	return out, nil
}

// PathWeight sums the cheapest edge between each consecutive pair of path.
// ok is false when some consecutive pair has no edge in g.
func PathWeight(g *core.Graph, path []int) (Distance, bool) {
	total := Finite(0)
	for i := 1; i < len(path); i++ {
		w, ok := g.MinWeight(path[i-1], path[i])
		if !ok {
			return Infinite, false
		}
		total = total.Add(w)
	}

	return total, true
}
