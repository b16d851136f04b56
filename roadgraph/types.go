package roadgraph

import (
	"errors"

	"github.com/katalvlaran/latpath/curve"
	"github.com/katalvlaran/latpath/decision"
	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/geom"
	"github.com/katalvlaran/latpath/lattice"
)

// Sentinel errors for graph construction and search.
var (
	// ErrNilReferenceLine indicates a nil reference line was passed to New.
	ErrNilReferenceLine = errors.New("roadgraph: reference line is nil")

	// ErrNilSpeedProfile indicates a nil speed profile was passed to New.
	ErrNilSpeedProfile = errors.New("roadgraph: speed profile is nil")

	// ErrNilCostEvaluator indicates a nil cost evaluator was passed to New.
	ErrNilCostEvaluator = errors.New("roadgraph: cost evaluator is nil")

	// ErrNilDecisionData indicates FindPathTunnel received a nil
	// obstacle/decision container.
	ErrNilDecisionData = errors.New("roadgraph: decision container is nil")

	// ErrBadConfig indicates a Config field is outside its valid range.
	ErrBadConfig = errors.New("roadgraph: invalid config")

	// ErrSearchFailure indicates the backtrack never reached the root:
	// no node of the final level was reachable. Fatal to the cycle.
	ErrSearchFailure = errors.New("roadgraph: no feasible path through the lattice")

	// ErrFrameConversion indicates a stitched Frenet sample could not be
	// mapped back into the Cartesian frame. Fatal to the cycle.
	ErrFrameConversion = errors.New("roadgraph: frenet to cartesian conversion failed")
)

// Boundary derivative policy: every lattice station resets lateral
// velocity and acceleration to zero. This is a deliberate simplification
// of the search space, not a limitation of the quintic representation.
const (
	stationBoundaryDL  = 0.0
	stationBoundaryDDL = 0.0
)

// rootRef marks the predecessor of the synthetic root.
var rootRef = nodeRef{level: -1, index: -1}

// nodeRef addresses a node by (level, index) inside the per-level arena.
// Levels are strictly ordered by increasing s, so references never cycle.
type nodeRef struct {
	level, index int
}

// node is one lattice vertex. minCost is the best cumulative cost from
// the root, curve the quintic of the winning inbound edge, prev the
// winning predecessor. relaxed distinguishes "cost 0" from "unreached".
type node struct {
	slPoint frenet.SLPoint
	minCost float64
	curve   curve.Quintic
	prev    nodeRef
	relaxed bool
}

// VehicleState is the Cartesian start state of the planning cycle.
type VehicleState struct {
	Position geom.Vec2D
	Theta    float64
	Kappa    float64
	Speed    float64
}

// Config bundles every tunable of one RoadGraph.
//
// Lattice        – waypoint sampling policy (see package lattice).
// PathResolution – arc-length spacing of stitched path samples, meters.
// Vehicle        – ego footprint forwarded to the decision engine.
// Decision       – classification thresholds (see package decision).
type Config struct {
	Lattice        lattice.Options
	PathResolution float64
	Vehicle        decision.VehicleParam
	Decision       decision.Options
}

// DefaultConfig returns the defaults of all four tunables: the default
// lattice and decision thresholds, a 0.1 m stitching resolution and a
// mid-size sedan footprint.
func DefaultConfig() Config {
	return Config{
		Lattice:        lattice.DefaultOptions(),
		PathResolution: 0.1,
		Vehicle:        decision.VehicleParam{Length: 4.933, Width: 2.11},
		Decision:       decision.DefaultOptions(),
	}
}
