// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodStart is the canonical name for the Start constructor.
	MethodStart = "Start"
)

//-----------------------------------------------------------------------------
// Vertex Label Defaults
//-----------------------------------------------------------------------------

// CenterLabel is the label of the hub vertex in Star and Wheel.
const CenterLabel = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology:
// one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinRandomNodes is the smallest size accepted by RandomSparse.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
