// File: methods_clone.go
// Role: Deep copies of a graph.
//
// Concurrency:
//   - The source is read under its read lock; the clone is private until returned.
package core

// Clone returns a deep copy of g: vertices, labels, adjacency lists (order
// preserved), edge catalogue, start vertex and logger.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithLogger(g.log))
	for id, label := range g.labels {
		clone.labels[id] = label
		clone.byLabel[label] = id
	}
	for id, nbs := range g.adjacency {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		clone.adjacency[id] = cp
	}
	clone.edges = append([]Edge(nil), g.edges...)
	clone.start = g.start

	return clone
}
