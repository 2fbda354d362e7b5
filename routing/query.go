// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// Route is the answer to one source→destination query.
// Path is nil when Reachable is false.
type Route struct {
	Algorithm   Algorithm
	Source      string
	Destination string
	Reachable   bool
	Distance    shortest.Distance
	Path        []string
}

// String renders the route the way reports print it.
func (r Route) String() string {
	if !r.Reachable {
		return fmt.Sprintf("No path exists from %s to %s.", r.Source, r.Destination)
	}

	return fmt.Sprintf("Distance: %s, Path: %s", r.Distance, strings.Join(r.Path, " -> "))
}

// Query computes the route from src to dst with algo.
//
// Errors:
//   - shortest.ErrNilGraph: g is nil.
//   - core.ErrUnknownCity: src or dst is not bound in g.
//   - ErrUnknownAlgorithm: algo is not one of All().
func Query(g *core.Graph, src, dst string, algo Algorithm) (Route, error) {
	from, to, err := endpoints(g, src, dst)
	if err != nil {
		return Route{}, err
	}
	res, err := Compute(g, from, algo)
	if err != nil {
		return Route{}, err
	}

	return routeFrom(g, res, algo, src, dst, to)
}

// Compare runs every algorithm for src→dst and returns one Route each, in All() order.
// Names are resolved once, before any engine runs.
func Compare(g *core.Graph, src, dst string) ([]Route, error) {
	from, to, err := endpoints(g, src, dst)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(All()))
	for _, algo := range All() {
		res, err := Compute(g, from, algo)
		if err != nil {
			return nil, fmt.Errorf("routing: %s: %w", algo, err)
		}
		route, err := routeFrom(g, res, algo, src, dst, to)
		if err != nil {
			return nil, fmt.Errorf("routing: %s: %w", algo, err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func endpoints(g *core.Graph, src, dst string) (from, to int, err error) {
	if g == nil {
		return 0, 0, shortest.ErrNilGraph
	}
	if from, err = g.Index(src); err != nil {
		return 0, 0, fmt.Errorf("routing: source: %w", err)
	}
	if to, err = g.Index(dst); err != nil {
		return 0, 0, fmt.Errorf("routing: destination: %w", err)
	}

	return from, to, nil
}

func routeFrom(g *core.Graph, res *shortest.Result, algo Algorithm, src, dst string, to int) (Route, error) {
	route := Route{Algorithm: algo, Source: src, Destination: dst, Distance: shortest.Infinite}
	path, ok, err := res.PathTo(to)
	if err != nil || !ok {
		return route, err
	}
	names, err := shortest.Names(g, path)
	if err != nil {
		return route, err
	}
	route.Reachable = true
	route.Distance = res.Dist[to]
	route.Path = names

	return route, nil
}
