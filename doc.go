// Package disasteraid ranks disaster-affected people by need and plans supply
// routes to them over a network of cities.
//
// What is inside?
//
//	beneficiary/    Person records, age-group policy, stable priority ranking
//	core/           fixed-size directed city graph, name↔index bijection, RW-locked
//	shortest/       Distance (no magic infinity), Result, iterative path reconstruction
//	dijkstra/       priority-queue relaxation, O(E log V)
//	bellmanford/    full edge relaxation with a negative-cycle check, O(V·E)
//	floydwarshall/  all-pairs closure with next-hop table, projected to one source, O(V³)
//	routing/        Algorithm choice, Query/Compare, Assign, logged Planner
//	scenario/       TOML scenario files → validated input + graph
//	cmd/disasteraid/ CLI: config, logging, tabular report
//
// Quick start:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AssignCity("A", 0)
//	_ = g.AssignCity("B", 1)
//	_ = g.AssignCity("C", 2)
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", 3)
//
//	route, _ := routing.Query(g, "A", "C", routing.Dijkstra)
//	fmt.Println(route) // Distance: 7, Path: A -> B -> C
//
// The three engines agree on every graph without parallel edges. With
// parallel roads between the same pair of cities, Floyd–Warshall keeps only
// the last one declared, while the other two use the cheapest.
package disasteraid
