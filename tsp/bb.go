// Package tsp: exact depth-first Branch-and-Bound over a core.Graph.
//
// Solve enumerates Hamiltonian cycles through the start vertex and keeps the
// lightest one. The only bound is the incumbent itself: a partial path whose
// weight plus the next edge is not strictly below the best complete tour is
// never extended. Because weights are non-negative this never discards an
// optimal tour.
//
// Rationale (succinct):
//  1. The graph is prefetched once into dense indices (adjacency order kept),
//     so the hot loop touches only slices: no locks, no maps.
//  2. The not-yet-visited set is a []bool plus a counter; membership and
//     restoration are O(1).
//  3. All mutable search state lives in one bbEngine passed by pointer through
//     the recursion. Each step marks, recurses, then unmarks, so a returning
//     child leaves visited flags and path exactly as it found them.
//  4. Branching order is adjacency order, i.e. edge insertion order. Among
//     tours of equal weight the first one found in that order is kept
//     (improvements must be strict).
//
// Complexity:
//   - Worst case O(n!) explored paths; pruning makes small graphs fast.
//   - Memory: O(V+E) for the prefetch, O(n) for path/visited; recursion depth ≤ n.
//
// There is no cancellation and no time budget: the search runs to completion.
package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvtour/core"
)

// unbounded stands for "no tour found yet".
const unbounded = int64(math.MaxInt64)

// arc is one prefetched adjacency entry in dense index space.
type arc struct {
	to int
	w  int64
}

// bbEngine holds all search data.
type bbEngine struct {
	// Graph data (dense)
	n     int
	start int
	ids   []core.VertexID // dense index → vertex id
	adj   [][]arc         // nil row: vertex has no recorded adjacency

	// Current search state
	visited   []bool // true once a vertex is on the current path
	remaining int    // vertices not yet on the path
	path      []int  // path[0] == start

	// Current best incumbent
	bestPath   []int
	bestWeight int64
	found      bool

	stats Stats

	// onIncomplete is told about every abandoned branch.
	onIncomplete func(id core.VertexID)
}

// newEngine prefetches g into dense buffers. ids must be g's vertex set and
// start one of them.
func newEngine(g *core.Graph, ids []core.VertexID, start core.VertexID) *bbEngine {
	e := &bbEngine{
		n:          len(ids),
		ids:        ids,
		bestWeight: unbounded,
	}

	index := make(map[core.VertexID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	e.start = index[start]

	e.adj = make([][]arc, e.n)
	for i, id := range ids {
		nbs, ok := g.Neighbors(id)
		if !ok {
			continue
		}
		row := make([]arc, 0, len(nbs))
		for _, nb := range nbs {
			if j, known := index[nb.ID]; known {
				row = append(row, arc{to: j, w: nb.Weight})
			}
		}
		e.adj[i] = row
	}

	e.visited = make([]bool, e.n)
	e.visited[e.start] = true
	e.remaining = e.n - 1
	e.path = make([]int, 1, e.n)
	e.path[0] = e.start
	e.bestPath = make([]int, e.n)

	return e
}

// neighbors is the counted adjacency lookup. ok is false, and the branch is
// reported as incomplete, when v has no recorded adjacency.
func (e *bbEngine) neighbors(v int) ([]arc, bool) {
	e.stats.Decisions++
	row := e.adj[v]
	if len(row) == 0 {
		e.stats.IncompleteBranches++
		if e.onIncomplete != nil {
			e.onIncomplete(e.ids[v])
		}
		return nil, false
	}

	return row, true
}

// explore is the recursive step from current with the path weight so far.
func (e *bbEngine) explore(current int, acc int64) {
	e.stats.Calls++

	// Base case: every vertex is on the path, try to close the cycle.
	e.stats.Decisions++
	if e.remaining == 0 {
		e.close(current, acc)
		return
	}

	row, ok := e.neighbors(current)
	if !ok {
		return
	}

	var (
		a    arc
		next int64
	)
	for _, a = range row {
		e.stats.Decisions++
		if e.visited[a.to] {
			continue
		}
		next = acc + a.w
		if next >= e.bestWeight {
			e.stats.Pruned++
			continue
		}

		e.visited[a.to] = true
		e.remaining--
		e.path = append(e.path, a.to)

		e.explore(a.to, next)

		e.path = e.path[:len(e.path)-1]
		e.remaining++
		e.visited[a.to] = false
	}
}

// close looks for the first edge from last back to start and records the
// cycle if it strictly improves the incumbent.
func (e *bbEngine) close(last int, acc int64) {
	row, ok := e.neighbors(last)
	if !ok {
		return
	}
	for _, a := range row {
		if a.to != e.start {
			continue
		}
		e.stats.Decisions++
		if total := acc + a.w; total < e.bestWeight {
			e.commit(total)
		}
		return
	}
}

// commit snapshots the current path as the new incumbent.
func (e *bbEngine) commit(total int64) {
	copy(e.bestPath, e.path)
	e.bestWeight = total
	e.found = true
	e.stats.Improvements++
}

// Solve finds the minimum-weight Hamiltonian cycle that starts and ends at
// g's start vertex.
//
// Preconditions (checked before any exploration; reported as fatal):
//   - ErrNilGraph       if g is nil.
//   - ErrEmptyGraph     if g has no vertices.
//   - ErrNoStartVertex  if no start vertex is set.
//
// Outcome:
//   - success: Result with the closed tour, labels, weight and Stats.
//   - ErrNoSolution if no cycle exists; when some branch reached a vertex
//     without adjacency the error also matches ErrIncompleteGraph.
//
// Solve only reads g. Notifications go to the configured Reporter; a
// failing reporter never changes the outcome.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	nt := newNotifier(o)

	if g == nil {
		nt.fatal(ErrNilGraph)
		return Result{}, ErrNilGraph
	}
	ids, ok := g.Vertices()
	if !ok {
		nt.fatal(ErrEmptyGraph)
		return Result{}, ErrEmptyGraph
	}
	start, ok := g.Start()
	if !ok {
		nt.fatal(ErrNoStartVertex)
		return Result{}, ErrNoStartVertex
	}

	e := newEngine(g, ids, start)
	e.onIncomplete = func(id core.VertexID) {
		label, _ := g.Label(id)
		nt.incomplete(label)
	}

	nt.started()
	began := time.Now()
	e.explore(e.start, 0)
	e.stats.Elapsed = time.Since(began)

	if !e.found {
		err := ErrNoSolution
		if e.stats.IncompleteBranches > 0 {
			err = fmt.Errorf("%w: %w", ErrNoSolution, ErrIncompleteGraph)
		}
		nt.fatal(err)
		e.stats.ReportFailures = nt.failures
		return Result{Stats: e.stats}, err
	}

	res := Result{
		Tour:   make([]core.VertexID, 0, e.n+1),
		Labels: make([]string, 0, e.n+1),
		Weight: e.bestWeight,
	}
	for _, i := range e.bestPath {
		res.Tour = append(res.Tour, e.ids[i])
	}
	res.Tour = append(res.Tour, start)
	for _, id := range res.Tour {
		label, _ := g.Label(id)
		res.Labels = append(res.Labels, label)
	}
	if err := ValidateTour(g, res.Tour); err != nil {
		nt.fatal(err)
		e.stats.ReportFailures = nt.failures
		return Result{Stats: e.stats}, err
	}

	nt.solved(res, e.stats)
	e.stats.ReportFailures = nt.failures
	res.Stats = e.stats

	return res, nil
}
