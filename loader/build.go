package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtour/core"
)

// Build turns d into a graph. Vertex ids are assigned 1..n in node order and
// each node's ID becomes the vertex label; edges and the starting node refer
// to those labels.
//
// Rejected items (duplicate ids, unknown endpoints, bad weights, an unknown
// starting node) are skipped. Their errors are returned in document order,
// each wrapping the core sentinel, and never stop the build: the returned
// graph is always usable.
func Build(d Description, opts ...core.GraphOption) (*core.Graph, []error) {
	g := core.NewGraph(opts...)
	var errs []error

	for i, n := range d.Nodes {
		if err := g.AddVertex(core.VertexID(i+1), n.ID); err != nil {
			errs = append(errs, fmt.Errorf("node %d (%q): %w", i, n.ID, err))
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			errs = append(errs, fmt.Errorf("edge %d (%q-%q): %w", i, e.From, e.To, err))
		}
	}
	if d.StartingNode != "" {
		if err := g.SetStart(d.StartingNode); err != nil {
			errs = append(errs, fmt.Errorf("starting node %q: %w", d.StartingNode, err))
		}
	}

	return g, errs
}

// Describe is the inverse of Build: nodes in ascending id order, edges in
// insertion order. Edge labels carry the weight and edge ids are e1..en.
func Describe(g *core.Graph) Description {
	var d Description
	if g == nil {
		return d
	}

	ids, _ := g.Vertices()
	d.Nodes = make([]Node, 0, len(ids))
	for _, id := range ids {
		label, _ := g.Label(id)
		d.Nodes = append(d.Nodes, Node{ID: label, Label: label})
	}

	edges := g.Edges()
	d.Edges = make([]Edge, 0, len(edges))
	for i, e := range edges {
		from, _ := g.Label(e.From)
		to, _ := g.Label(e.To)
		d.Edges = append(d.Edges, Edge{
			From:   from,
			To:     to,
			Weight: e.Weight,
			Label:  strconv.FormatInt(e.Weight, 10),
			ID:     "e" + strconv.Itoa(i+1),
		})
	}

	if start, ok := g.Start(); ok {
		d.StartingNode, _ = g.Label(start)
	}

	return d
}

// Validate reports every problem Build would skip, so strict callers can
// refuse a document up front. The result joins one error per problem, each
// wrapping ErrMalformedDescription; nil means Build will accept everything.
func Validate(d Description) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrMalformedDescription}, args...)...))
	}

	seen := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			bad("node %d has an empty id", i)
			continue
		}
		if first, dup := seen[n.ID]; dup {
			bad("node %d repeats id %q of node %d", i, n.ID, first)
			continue
		}
		seen[n.ID] = i
	}

	for i, e := range d.Edges {
		_, okFrom := seen[e.From]
		_, okTo := seen[e.To]
		switch {
		case !okFrom || !okTo:
			bad("edge %d (%q-%q) references an unknown node", i, e.From, e.To)
		case e.From == e.To:
			bad("edge %d is a self-loop on %q", i, e.From)
		case e.Weight < 0 || e.Weight > core.MaxWeight:
			bad("edge %d (%q-%q) weight %d outside [0, %d]", i, e.From, e.To, e.Weight, core.MaxWeight)
		}
	}

	if d.StartingNode != "" {
		if _, ok := seen[d.StartingNode]; !ok {
			bad("starting node %q is not a node id", d.StartingNode)
		}
	}

	return errors.Join(errs...)
}
