// SPDX-License-Identifier: MIT

package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/disasteraid/beneficiary"
	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// ErrResultMismatch indicates a Result computed for a graph of a different size.
var ErrResultMismatch = errors.New("routing: result does not match graph")

// Status classifies one beneficiary's route.
type Status int

const (
	StatusRouted Status = iota
	StatusNoPath
	StatusUnknownCity
)

func (s Status) String() string {
	switch s {
	case StatusRouted:
		return "routed"
	case StatusNoPath:
		return "no path"
	case StatusUnknownCity:
		return "unknown city"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Assignment is one row of the beneficiary routing report.
// Distance and Path are meaningful only for StatusRouted.
type Assignment struct {
	Person   beneficiary.Person
	Status   Status
	Distance shortest.Distance
	Path     []string
}

// String renders the row's route information.
func (a Assignment) String() string {
	switch a.Status {
	case StatusUnknownCity:
		return fmt.Sprintf("City '%s' not found in the graph.", a.Person.City)
	case StatusNoPath:
		return fmt.Sprintf("No path exists to %s.", a.Person.City)
	default:
		return fmt.Sprintf("Distance: %s, Path: %s", a.Distance, strings.Join(a.Path, " -> "))
	}
}

// Assign resolves every person's city against res, preserving input order.
// Rank people first to get a priority-ordered report.
func Assign(people []beneficiary.Person, g *core.Graph, res *shortest.Result) ([]Assignment, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	if res == nil {
		return nil, shortest.ErrNilResult
	}
	if res.Len() != g.VertexCount() {
		return nil, fmt.Errorf("%w: %d distances for %d vertices", ErrResultMismatch, res.Len(), g.VertexCount())
	}

	out := make([]Assignment, len(people))
	for i, p := range people {
		a := Assignment{Person: p, Distance: shortest.Infinite}
		idx, err := g.Index(p.City)
		if err != nil {
			a.Status = StatusUnknownCity
			out[i] = a
			continue
		}

		path, ok, err := res.PathTo(idx)
		if err != nil {
			return nil, fmt.Errorf("routing: %s: %w", p.Name, err)
		}
		if !ok {
			a.Status = StatusNoPath
			out[i] = a
			continue
		}
		if a.Path, err = shortest.Names(g, path); err != nil {
			return nil, fmt.Errorf("routing: %s: %w", p.Name, err)
		}
		a.Status = StatusRouted
		a.Distance = res.Dist[idx]
		out[i] = a
	}

	return out, nil
}
