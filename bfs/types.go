package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks for one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the traversal and is returned wrapped.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, a no-op visit hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.VertexID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d. Zero means no limit;
// a negative d is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop count from the start for every reached vertex.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result struct {
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.VertexID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to vertex %d", dest)
	}
	path := []core.VertexID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
