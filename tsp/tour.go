// Package tsp: tour utilities.
//
// ValidateTour checks the Hamiltonian-cycle shape of a tour against a graph;
// TourWeight sums its edge weights. Both are independent of the search and
// serve callers that obtain a tour elsewhere (a file, a UI, a test oracle).
//
// Design:
//   - No logging, no panics on user input; failures wrap ErrInvalidTour.
//   - O(n) time, O(n) space for the visited marker.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == |V|+1, tour[0] == tour[|V|] == start,
//	every vertex of g appears exactly once in tour[0:|V|],
//	consecutive vertices are adjacent in g.
//
// Returns nil if valid, ErrNilGraph/ErrEmptyGraph/ErrNoStartVertex for an
// unusable graph, otherwise an error wrapping ErrInvalidTour.
func ValidateTour(g *core.Graph, tour []core.VertexID) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return ErrEmptyGraph
	}
	start, ok := g.Start()
	if !ok {
		return ErrNoStartVertex
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: must start and end at vertex %d", ErrInvalidTour, start)
	}

	seen := make(map[core.VertexID]struct{}, n)
	var (
		i  int
		id core.VertexID
	)
	for i = 0; i < n; i++ {
		id = tour[i]
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: unknown vertex %d at position %d", ErrInvalidTour, id, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: vertex %d repeated at position %d", ErrInvalidTour, id, i)
		}
		seen[id] = struct{}{}
		if _, adjacent := g.EdgeWeight(id, tour[i+1]); !adjacent {
			return fmt.Errorf("%w: no edge %d-%d", ErrInvalidTour, id, tour[i+1])
		}
	}

	return nil
}

// TourWeight validates tour and returns the sum of its edge weights. Between
// parallel edges the cheapest one is counted.
func TourWeight(g *core.Graph, tour []core.VertexID) (int64, error) {
	if err := ValidateTour(g, tour); err != nil {
		return 0, err
	}

	var total int64
	for i := 0; i+1 < len(tour); i++ {
		w, _ := g.EdgeWeight(tour[i], tour[i+1])
		total += w
	}

	return total, nil
}
