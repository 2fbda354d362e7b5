// SPDX-License-Identifier: MIT

package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/disasteraid/bellmanford"
	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/dijkstra"
	"github.com/katalvlaran/disasteraid/floydwarshall"
	"github.com/katalvlaran/disasteraid/shortest"
)

// ErrUnknownAlgorithm indicates an Algorithm value or name outside the known set.
var ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

// Algorithm selects a shortest-path engine.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	BellmanFord
	FloydWarshall
)

// All returns every algorithm in report order.
func All() []Algorithm {
	return []Algorithm{Dijkstra, BellmanFord, FloydWarshall}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	case FloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns the human-readable name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case Dijkstra:
		return "Dijkstra's Algorithm"
	case BellmanFord:
		return "Bellman-Ford Algorithm"
	case FloydWarshall:
		return "Floyd-Warshall Algorithm"
	default:
		return a.String()
	}
}

// Complexity returns the asymptotic running time of the engine.
func (a Algorithm) Complexity() string {
	switch a {
	case Dijkstra:
		return "O(E log V)"
	case BellmanFord:
		return "O(V * E)"
	case FloydWarshall:
		return "O(V^3)"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of All().
func (a Algorithm) Valid() bool { return a >= Dijkstra && a <= FloydWarshall }

// ParseAlgorithm accepts the canonical names, their unhyphenated forms and the
// short aliases "bf" and "fw". Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "bellman-ford", "bellmanford", "bf":
		return BellmanFord, nil
	case "floyd-warshall", "floydwarshall", "fw":
		return FloydWarshall, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Compute runs algo on g from source.
func Compute(g *core.Graph, source int, algo Algorithm) (*shortest.Result, error) {
	switch algo {
	case Dijkstra:
		return dijkstra.Dijkstra(g, source)
	case BellmanFord:
		return bellmanford.BellmanFord(g, source)
	case FloydWarshall:
		return floydwarshall.SingleSource(g, source)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
