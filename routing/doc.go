// SPDX-License-Identifier: MIT

// Package routing connects the shortest-path engines to beneficiaries.
//
// The three engines stay independent functions; Algorithm is a tagged choice
// and Compute dispatches on it with a switch:
//
//	res, err := routing.Compute(g, src, routing.BellmanFord)
//
// Query and Compare answer "how do I get from X to Y" by city name.
// Assign folds one precomputed Result over a beneficiary list, in list order,
// and classifies each person as routed, without a path, or living in a city
// the graph does not know. Planner wraps validation, ranking, computation and
// assignment into one logged call.
//
// Unreachable destinations are never errors. Errors are reserved for bad input:
// nil graphs, unknown source or destination names, unknown algorithms, and
// results that belong to a different graph.
package routing
