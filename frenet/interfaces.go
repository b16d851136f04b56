package frenet

import (
	"github.com/katalvlaran/latpath/curve"
	"github.com/katalvlaran/latpath/geom"
)

// ReferenceLine is the road-aligned curve every planning cycle works
// against. Implementations are read-only during a cycle.
type ReferenceLine interface {
	// ProjectToFrenet maps a Cartesian point into the line's SL frame.
	// It fails when the point lies outside the line's domain.
	ProjectToFrenet(p geom.Vec2D) (SLPoint, error)

	// ToCartesian maps an SL position back into the Cartesian frame.
	ToCartesian(sl SLPoint) (geom.Vec2D, error)

	// ReferencePointAt returns the local line geometry at arc length s.
	ReferencePointAt(s float64) ReferencePoint

	// IsOnRoad reports whether the SL position lies on the drivable
	// road surface.
	IsOnRoad(sl SLPoint) bool

	// TotalArcLength returns the full length of the line.
	TotalArcLength() float64
}

// SpeedPoint is one sample of a heuristic speed profile: at time T the
// vehicle is expected to have travelled arc length S with speed V.
type SpeedPoint struct {
	T, S, V float64
}

// SpeedProfile is the externally supplied heuristic longitudinal plan.
type SpeedProfile interface {
	// SpeedAt returns the profile sample at time t, failing when t lies
	// outside the profile's domain.
	SpeedAt(t float64) (SpeedPoint, error)

	// TotalTime returns the time span the profile covers.
	TotalTime() float64
}

// CostEvaluator scores one candidate lattice edge. The planner treats it
// as an opaque collaborator: lower is better, and the returned scalar is
// accumulated along predecessor chains without further interpretation.
type CostEvaluator interface {
	Evaluate(c curve.Quintic, sStart, sEnd float64) float64
}
