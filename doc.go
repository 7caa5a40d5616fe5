// Package lvtour finds exact travelling salesman tours over small labelled
// graphs.
//
// What is lvtour?
//
//	An in-memory toolkit built around one question: starting from a chosen
//	vertex, which closed walk visits every other vertex exactly once at the
//	lowest total weight?
//
// Under the hood it is organized into subpackages:
//
//	core/       thread-safe undirected weighted Graph with labelled vertices
//	tsp/        depth-first branch-and-bound search, tour validation
//	report/     notification sinks for search progress (console, log, channel)
//	loader/     JSON, YAML and TOML graph descriptions ⇄ core.Graph
//	builder/    deterministic fixtures: complete, cycle, path, star, wheel, random
//	bfs/        breadth-first reachability, used to flag graphs with no tour
//	cmd/lvtour  command line front end (solve, generate, version)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square with weights 1 on each side has the optimal tour A->B->D->C->A
//	with total weight 4.
//
//	go install github.com/katalvlaran/lvtour/cmd/lvtour@latest
package lvtour
