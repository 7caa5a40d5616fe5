package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

type queueItem struct {
	id     core.VertexID
	depth  int
	parent core.VertexID // core.NoVertex for the root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *Result
}

// BFS runs breadth-first search on g from start. Neighbours are enqueued in
// edge insertion order, so Order is reproducible for a given graph.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error. The partial
// Result is returned alongside a traversal error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &Result{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}
	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// Unreached lists, in ascending id order, the vertices of g that BFS from
// start cannot reach. A graph whose unreached list is non-empty has no tour
// through every vertex.
func Unreached(g *core.Graph, start core.VertexID) ([]core.VertexID, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	ids, _ := g.Vertices()
	var out []core.VertexID
	for _, id := range ids {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoVertex {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at vertex %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbour within MaxDepth.
// Parallel edges collapse onto the first sighting.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	nbs, _ := w.graph.Neighbors(item.id)
	for _, nb := range nbs {
		if !w.visited[nb.ID] {
			w.enqueue(nb.ID, next, item.id)
		}
	}
}
