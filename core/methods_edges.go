// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - Neighbors(v) preserves edge insertion order; the tour search explores
//     in exactly this order, so it decides which of several equal-weight
//     tours is reported.
//   - Edges() returns edges in insertion order.
//
// Concurrency:
//   - Both adjacency entries of an edge are appended under one write lock.
package core

// AddEdge inserts an undirected edge between the vertices labelled fromLabel
// and toLabel.
//
// Steps:
//  1. Validate the weight (ErrNegativeWeight, ErrWeightOutOfRange).
//  2. Under the write lock resolve both labels (ErrUnknownLabel).
//  3. Reject a self-loop (ErrLoopNotAllowed).
//  4. Append (to, w) to from's list and (from, w) to to's list, record the edge.
//
// Parallel edges are accepted; each one becomes its own adjacency entry.
// Every rejection skips the edge, logs a warning and leaves the graph untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(fromLabel, toLabel string, weight int64) error {
	if weight < 0 {
		g.log.Warn().Str("from", fromLabel).Str("to", toLabel).Int64("weight", weight).Msg("negative weight, edge not added")
		return ErrNegativeWeight
	}
	if weight > MaxWeight {
		g.log.Warn().Str("from", fromLabel).Str("to", toLabel).Int64("weight", weight).Msg("weight out of range, edge not added")
		return ErrWeightOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, okFrom := g.byLabel[fromLabel]
	to, okTo := g.byLabel[toLabel]
	if !okFrom || !okTo {
		g.log.Warn().Str("from", fromLabel).Str("to", toLabel).Msg("one or both vertices do not exist, edge not added")
		return ErrUnknownLabel
	}
	if from == to {
		g.log.Warn().Str("from", fromLabel).Str("to", toLabel).Msg("self-loop, edge not added")
		return ErrLoopNotAllowed
	}

	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, Weight: weight})
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Neighbors returns a copy of id's adjacency list in insertion order.
// The boolean is false when id has no recorded adjacency, which covers both
// an unknown id and a vertex that no edge touches.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id VertexID) ([]Neighbor, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs, ok := g.adjacency[id]
	if !ok || len(nbs) == 0 {
		return nil, false
	}
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out, true
}

// EdgeWeight returns the weight of the cheapest edge between a and b.
// ok is false when the two vertices are not adjacent.
//
// Complexity: O(deg(a)).
func (g *Graph) EdgeWeight(a, b VertexID) (w int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, nb := range g.adjacency[a] {
		if nb.ID == b && (!ok || nb.Weight < w) {
			w, ok = nb.Weight, true
		}
	}

	return w, ok
}

// EdgeCount returns the number of undirected edges (parallel edges counted separately).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge catalogue in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
