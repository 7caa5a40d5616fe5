// Package core defines the labelled, undirected, weighted Graph consumed by
// the tour search, together with its sentinel errors and construction options.
//
// All Graph methods are guarded by a single sync.RWMutex, so a graph may be
// populated and queried from several goroutines.
//
// Errors:
//
//	ErrReservedVertexID - id 0 (NoVertex) cannot be inserted.
//	ErrEmptyLabel       - vertex label is the empty string.
//	ErrDuplicateVertex  - a vertex with this id already exists.
//	ErrDuplicateLabel   - a vertex with this label already exists.
//	ErrUnknownLabel     - an edge endpoint or start label does not exist.
//	ErrLoopNotAllowed   - both endpoints of an edge resolve to the same vertex.
//	ErrNegativeWeight   - edge weight below zero.
//	ErrWeightOutOfRange - edge weight above MaxWeight.
//	ErrVertexNotFound   - requested vertex id does not exist.
//
// Every one of them is recoverable: the offending mutation is skipped, the
// graph stays consistent, and the caller decides whether to continue.
package core

import (
	"errors"
	"math"
	"sync"

	"github.com/rs/zerolog"
)

// Sentinel errors for core graph operations.
var (
	// ErrReservedVertexID indicates an attempt to insert NoVertex.
	ErrReservedVertexID = errors.New("core: vertex id 0 is reserved")

	// ErrEmptyLabel indicates that the provided vertex label is empty.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateVertex indicates a vertex id that is already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrDuplicateLabel indicates a vertex label that is already present.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")

	// ErrUnknownLabel indicates a label that does not resolve to any vertex.
	ErrUnknownLabel = errors.New("core: unknown vertex label")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same vertex.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightOutOfRange indicates an edge weight above MaxWeight.
	ErrWeightOutOfRange = errors.New("core: edge weight out of range")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// VertexID identifies a vertex within one Graph.
type VertexID uint32

// NoVertex is the reserved zero id. Start returns it (with ok == false)
// while no start vertex has been set.
const NoVertex VertexID = 0

// MaxWeight is the largest accepted edge weight. Keeping weights in the
// uint32 range means a tour over any realistic vertex count cannot overflow
// the int64 accumulator used by the search.
const MaxWeight int64 = math.MaxUint32

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// ID is the vertex at the other end of the edge.
	ID VertexID

	// Weight is the edge weight, identical on both sides of the edge.
	Weight int64
}

// Edge is one undirected edge as it was inserted.
type Edge struct {
	// From and To are the endpoints in insertion order.
	From VertexID
	To   VertexID

	// Weight is the non-negative edge weight.
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger installs the logger used to report skipped mutations.
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) GraphOption {
	return func(g *Graph) { g.log = l }
}

// Graph is an undirected, weighted graph whose vertices carry a unique
// integer id and a unique string label.
//
// Undirectedness is stored explicitly: every edge appears in both endpoints'
// adjacency lists with the same weight. Both entries are written inside the
// same critical section, so the two lists can never disagree.
type Graph struct {
	mu  sync.RWMutex
	log zerolog.Logger

	// Storage
	labels    map[VertexID]string     // vertex id → label
	byLabel   map[string]VertexID     // label → vertex id
	adjacency map[VertexID][]Neighbor // vertex id → neighbors in edge insertion order
	edges     []Edge                  // one entry per undirected edge, insertion order

	start VertexID // NoVertex while unset
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:       zerolog.Nop(),
		labels:    make(map[VertexID]string),
		byLabel:   make(map[string]VertexID),
		adjacency: make(map[VertexID][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
