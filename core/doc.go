// Package core provides the thread-safe, in-memory Graph that tour searches
// run on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices carry a caller-chosen integer id (VertexID, 0 reserved) and a
//     unique string label. Labels are how edges and the start vertex are named.
//   - Edges are undirected with a non-negative integer weight (≤ MaxWeight).
//     Each edge is stored twice, once in each endpoint's adjacency list, with
//     identical weight.
//   - Adjacency lists keep edge insertion order. Searches iterate them in that
//     order, which makes results reproducible.
//   - Exactly one optional start vertex.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id VertexID, label string) error   // O(1)
//	HasVertex(id VertexID) bool                  // O(1)
//	Vertices() ([]VertexID, bool)                // O(V log V), ascending
//	Label(id VertexID) (string, bool)            // O(1)
//	VertexByLabel(label string) (VertexID, bool) // O(1)
//
//	// Edges
//	AddEdge(fromLabel, toLabel string, weight int64) error // O(1)
//	Neighbors(id VertexID) ([]Neighbor, bool)              // O(deg)
//	EdgeWeight(a, b VertexID) (int64, bool)                // O(deg)
//	Edges() []Edge                                         // O(E), insertion order
//
//	// Start vertex
//	SetStart(label string) error
//	Start() (VertexID, bool)
//
// Rejected mutations (duplicate id or label, unknown label, self-loop, bad
// weight) never corrupt the graph. They are logged on the logger installed
// with WithLogger and returned as sentinel errors so that loaders can skip
// them and keep going:
//
//	if err := g.AddVertex(1, "A"); errors.Is(err, core.ErrDuplicateLabel) {
//		// keep the first "A"
//	}
package core
