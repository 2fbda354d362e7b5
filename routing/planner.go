// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/disasteraid/beneficiary"
	"github.com/katalvlaran/disasteraid/core"
	"github.com/katalvlaran/disasteraid/shortest"
)

// Options configures a Planner.
type Options struct {
	Algorithm Algorithm
	Policy    beneficiary.Policy
	Logger    logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// WithAlgorithm selects the engine used by Dispatch.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithPolicy replaces the ranking thresholds.
func WithPolicy(p beneficiary.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger routes planner logs to l. A nil l keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions: Dijkstra, DefaultPolicy, logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Algorithm: Dijkstra,
		Policy:    beneficiary.DefaultPolicy(),
		Logger:    logrus.StandardLogger(),
	}
}

// Planner ranks beneficiaries and routes supplies to them over one graph.
// It holds no per-call state and may be shared by goroutines.
type Planner struct {
	g    *core.Graph
	opts Options
}

// Plan is the outcome of one Dispatch.
type Plan struct {
	Source      string
	Algorithm   Algorithm
	Ranked      []beneficiary.Person
	Assignments []Assignment // same order as Ranked
}

// Counts tallies assignments per status.
func (p *Plan) Counts() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, a := range p.Assignments {
		counts[a.Status]++
	}

	return counts
}

// NewPlanner validates opts against g.
func NewPlanner(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}
	if err := o.Policy.Validate(); err != nil {
		return nil, err
	}

	return &Planner{g: g, opts: o}, nil
}

// Algorithm returns the configured engine.
func (p *Planner) Algorithm() Algorithm { return p.opts.Algorithm }

// Dispatch validates people, ranks them, runs the engine once from source and
// assigns a route to every person in rank order.
func (p *Planner) Dispatch(people []beneficiary.Person, source string) (*Plan, error) {
	log := p.opts.Logger.WithFields(logrus.Fields{
		"source":    source,
		"algorithm": p.opts.Algorithm.String(),
	})

	if err := beneficiary.ValidateAll(people); err != nil {
		log.WithError(err).Warn("rejected beneficiary list")
		return nil, err
	}
	src, err := p.g.Index(source)
	if err != nil {
		log.WithError(err).Warn("unknown supply source")
		return nil, fmt.Errorf("routing: source: %w", err)
	}

	ranked := beneficiary.RankWith(p.opts.Policy, people)
	log.Debugf("ranked %d beneficiaries", len(ranked))

	start := time.Now()
	res, err := Compute(p.g, src, p.opts.Algorithm)
	if err != nil {
		log.WithError(err).Error("shortest-path computation failed")
		return nil, err
	}
	log.WithField("elapsed", time.Since(start)).Debug("shortest paths computed")

	assignments, err := Assign(ranked, p.g, res)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Source:      source,
		Algorithm:   p.opts.Algorithm,
		Ranked:      ranked,
		Assignments: assignments,
	}
	counts := plan.Counts()
	log.WithFields(logrus.Fields{
		"routed":       counts[StatusRouted],
		"no_path":      counts[StatusNoPath],
		"unknown_city": counts[StatusUnknownCity],
	}).Info("dispatch plan ready")

	return plan, nil
}

// Compare runs every engine for src→dst and logs each outcome at debug level.
func (p *Planner) Compare(src, dst string) ([]Route, error) {
	routes, err := Compare(p.g, src, dst)
	if err != nil {
		p.opts.Logger.WithError(err).Warnf("comparison %s -> %s failed", src, dst)
		return nil, err
	}
	for _, r := range routes {
		p.opts.Logger.WithFields(logrus.Fields{
			"algorithm": r.Algorithm.String(),
			"reachable": r.Reachable,
			"distance":  r.Distance.String(),
		}).Debugf("compared %s -> %s", src, dst)
	}

	return routes, nil
}
