// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned (or panicked) by the dijkstra package.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would close every road including zero-weight ones.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// MaxDistance      – cap on explored distance. Default math.MaxInt64 (no cap).
// InfEdgeThreshold – weight at which an edge becomes impassable. Default math.MaxInt64.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max stay infinite.
// Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every edge with weight ≥ threshold as closed.
// Panics with ErrBadInfThreshold if threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no closed roads.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
