// File: methods_vertices.go
// Role: Vertex lifecycle, label resolution and the designated start vertex.
//
// Determinism:
//   - Vertices() returns ids sorted ascending.
//
// Concurrency:
//   - Mutations take g.mu for writing, queries take it for reading.
package core

import "slices"

// AddVertex inserts a vertex with the given id and label.
//
// Implementation:
//   - Stage 1: Reject NoVertex and the empty label.
//   - Stage 2: Under the write lock, reject a present id, then a present label.
//   - Stage 3: Register the vertex in both directions (id → label, label → id).
//
// Behavior highlights:
//   - Conflicts are not fatal: the insert is skipped, a warning is logged and
//     the matching sentinel is returned. The first vertex always wins.
//   - A new vertex has no adjacency until an edge touches it.
//
// Errors:
//   - ErrReservedVertexID, ErrEmptyLabel, ErrDuplicateVertex, ErrDuplicateLabel.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id VertexID, label string) error {
	if id == NoVertex {
		g.log.Warn().Str("label", label).Msg("vertex id 0 is reserved, vertex not added")
		return ErrReservedVertexID
	}
	if label == "" {
		g.log.Warn().Uint32("id", uint32(id)).Msg("empty label, vertex not added")
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.labels[id]; exists {
		g.log.Warn().Uint32("id", uint32(id)).Str("label", label).Msg("a vertex with this id already exists, vertex not added")
		return ErrDuplicateVertex
	}
	if _, exists := g.byLabel[label]; exists {
		g.log.Warn().Uint32("id", uint32(id)).Str("label", label).Msg("a vertex with this label already exists, vertex not added")
		return ErrDuplicateLabel
	}

	g.labels[id] = label
	g.byLabel[label] = id

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.labels[id]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// Vertices returns every vertex id in ascending order.
// The boolean is false, and the slice nil, when the graph has no vertices.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() ([]VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.labels) == 0 {
		return nil, false
	}
	ids := make([]VertexID, 0, len(g.labels))
	for id := range g.labels {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, true
}

// Label returns the label of id.
func (g *Graph) Label(id VertexID) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	label, ok := g.labels[id]

	return label, ok
}

// VertexByLabel resolves a label to its vertex id.
// Complexity: O(1).
func (g *Graph) VertexByLabel(label string) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.byLabel[label]

	return id, ok
}

// SetStart records the vertex labelled label as the tour start.
// When the label is unknown the previous start (possibly none) is kept,
// a warning is logged and ErrUnknownLabel is returned.
func (g *Graph) SetStart(label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.byLabel[label]
	if !ok {
		g.log.Warn().Str("label", label).Msg("start label does not exist, start vertex not set")
		return ErrUnknownLabel
	}
	g.start = id

	return nil
}

// Start returns the start vertex. ok is false while no start has been set;
// id is then NoVertex.
func (g *Graph) Start() (id VertexID, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != NoVertex
}
