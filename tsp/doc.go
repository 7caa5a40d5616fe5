// Package tsp solves the Travelling Salesman Problem exactly on a core.Graph.
//
// Solve runs a depth-first Branch-and-Bound search from the graph's start
// vertex and returns the minimum-weight Hamiltonian cycle:
//
//	res, err := tsp.Solve(g, tsp.WithReporter(report.NewConsole(os.Stdout)))
//	if err != nil {
//		// errors.Is(err, tsp.ErrNoSolution), tsp.ErrNoStartVertex, ...
//	}
//	fmt.Println(res.Path("->"), res.Weight) // A->B->C->A 6
//
// Determinism:
//   - Neighbors are explored in edge insertion order.
//   - A tour replaces the incumbent only if strictly lighter, so equal-weight
//     ties go to the first tour found.
//
// Notifications (via report.Reporter), in order:
//
//	search started
//	incomplete graph: vertex "X" has no recorded adjacency   (zero or more, warn)
//	search finished in <elapsed>
//	optimal tour: A->B->C->A
//	total weight: 6
//	recursive calls: 1,234
//	decision points: 5,678                                   (finished)
//
// or, on failure, a single "fatal: <error>" notification with Finished set.
// Precondition failures (nil graph, no vertices, no start) emit only the
// fatal notification.
//
// Utilities:
//   - ValidateTour: closed-tour shape check against a graph.
//   - TourWeight:   validated sum of edge weights.
//
// Complexity: O(n!) worst case; exact search is practical for small graphs
// (a dozen vertices or so, fewer when weights are uniform).
package tsp
