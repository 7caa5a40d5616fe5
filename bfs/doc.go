// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Edge weights are ignored: BFS answers reachability questions, which the
// tour search cannot answer cheaply. Unreached lists the vertices a start
// vertex cannot reach; any such vertex means no tour exists.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id core.VertexID, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
