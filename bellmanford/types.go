// SPDX-License-Identifier: MIT

package bellmanford

import "errors"

// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
var ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

// Options configures a Bellman–Ford run.
type Options struct {
	// EarlyExit stops once a full pass makes no relaxation.
	EarlyExit bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithEarlyExit enables stopping after the first pass without any relaxation.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// DefaultOptions returns Options running all V-1 passes.
func DefaultOptions() Options {
	return Options{EarlyExit: false}
}
