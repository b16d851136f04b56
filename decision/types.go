package decision

import (
	"errors"

	"github.com/katalvlaran/latpath/geom"
)

// Sentinel errors for the decision engine.
var (
	// ErrNilReferenceLine indicates a nil reference line was passed to NewEngine.
	ErrNilReferenceLine = errors.New("decision: reference line is nil")

	// ErrBadOptions indicates an Options field is outside its valid range.
	ErrBadOptions = errors.New("decision: invalid engine options")

	// ErrBadVehicle indicates a non-positive vehicle dimension.
	ErrBadVehicle = errors.New("decision: vehicle dimensions must be positive")

	// ErrNilPath indicates Compute received a nil path.
	ErrNilPath = errors.New("decision: path is nil")

	// ErrNilData indicates Compute received a nil decision container.
	ErrNilData = errors.New("decision: decision container is nil")

	// ErrNilSpeedProfile indicates Compute received a nil speed profile.
	ErrNilSpeedProfile = errors.New("decision: speed profile is nil")

	// ErrTimeSeriesMismatch indicates a dynamic obstacle's predicted time
	// series did not align with the ego-by-time series. Recovered locally:
	// the obstacle is skipped, the cycle continues.
	ErrTimeSeriesMismatch = errors.New("decision: ego/obstacle time series mismatch")
)

// Type tags the decision variants.
type Type int

const (
	// TypeIgnore – the obstacle never interacts with the path.
	TypeIgnore Type = iota
	// TypeStop – stop short of a blocking static obstacle.
	TypeStop
	// TypeNudgeLeft – steer left around an obstacle on the right.
	TypeNudgeLeft
	// TypeNudgeRight – steer right around an obstacle on the left.
	TypeNudgeRight
	// TypeFollow – keep distance behind a moving obstacle.
	TypeFollow
)

// String returns the tag name, for logs and test output.
func (t Type) String() string {
	switch t {
	case TypeIgnore:
		return "Ignore"
	case TypeStop:
		return "Stop"
	case TypeNudgeLeft:
		return "NudgeLeft"
	case TypeNudgeRight:
		return "NudgeRight"
	case TypeFollow:
		return "Follow"
	default:
		return "Unknown"
	}
}

// StopReason explains a TypeStop decision.
type StopReason int

const (
	// StopReasonNone – not a stop decision.
	StopReasonNone StopReason = iota
	// StopReasonObstacle – a static obstacle blocks the corridor.
	StopReasonObstacle
)

// Decision is the tagged variant appended to an obstacle's list.
// DistanceS carries the longitudinal buffer of Stop/Follow decisions,
// DistanceL the lateral buffer of nudges; the unused field is zero.
type Decision struct {
	Type      Type
	DistanceS float64
	DistanceL float64
	Reason    StopReason
}

// VehicleParam is the ego footprint, passed explicitly to the engine
// instead of living in a process-wide configuration singleton.
type VehicleParam struct {
	Length float64
	Width  float64
}

// TrajectoryPoint is one predicted state of a dynamic obstacle.
type TrajectoryPoint struct {
	Position geom.Vec2D
	Theta    float64
	T        float64
}

// StaticObstacle exposes the fixed footprint of a non-moving obstacle.
type StaticObstacle interface {
	BoundingBox() geom.Box2D
}

// DynamicObstacle exposes the predicted trajectory of a moving obstacle.
type DynamicObstacle interface {
	// PredictedStateAt returns the obstacle state at time t from the
	// start of the cycle.
	PredictedStateAt(t float64) TrajectoryPoint

	// BoundingBoxAt returns the obstacle footprint at the given state.
	BoundingBoxAt(p TrajectoryPoint) geom.Box2D
}

// StaticObject pairs one static obstacle with its append-only decisions.
type StaticObject struct {
	Obstacle  StaticObstacle
	Decisions []Decision
}

// DynamicObject pairs one dynamic obstacle with its append-only decisions.
type DynamicObject struct {
	Obstacle  DynamicObstacle
	Decisions []Decision
}

// Data is the caller-owned obstacle/decision container of one cycle.
// The engine reads obstacle geometry and appends decisions; it never
// deletes or reorders entries.
type Data struct {
	Static  []*StaticObject
	Dynamic []*DynamicObject
}

// Options configures the classification thresholds.
//
// StopBuffer        – max |l| of an overlapping obstacle to force a stop, meters.
// IgnoreRange       – lateral gap below which a nudge is issued, meters.
// FollowRange       – box distance below which a follow is issued, meters.
// DecisionBuffer    – fixed buffer distance attached to stop/nudge/follow decisions, meters.
// PredictionHorizon – cap on the evaluated dynamic-obstacle time span, seconds.
// EvalTimeInterval  – spacing of dynamic-obstacle time samples, seconds.
type Options struct {
	StopBuffer        float64
	IgnoreRange       float64
	FollowRange       float64
	DecisionBuffer    float64
	PredictionHorizon float64
	EvalTimeInterval  float64
}

// DefaultOptions returns thresholds tuned alongside the default lattice:
// stop inside half a meter of the centerline, nudge within a 3 m gap,
// follow under a 1 m box distance, over a 5 s horizon sampled at 0.1 s.
func DefaultOptions() Options {
	return Options{
		StopBuffer:        0.5,
		IgnoreRange:       3.0,
		FollowRange:       1.0,
		DecisionBuffer:    0.5,
		PredictionHorizon: 5.0,
		EvalTimeInterval:  0.1,
	}
}

// validate reports whether every field is in range.
func (o Options) validate() error {
	switch {
	case o.StopBuffer <= 0:
		return errors.New("StopBuffer must be positive")
	case o.IgnoreRange <= 0:
		return errors.New("IgnoreRange must be positive")
	case o.FollowRange <= 0:
		return errors.New("FollowRange must be positive")
	case o.DecisionBuffer < 0:
		return errors.New("DecisionBuffer must be non-negative")
	case o.PredictionHorizon <= 0:
		return errors.New("PredictionHorizon must be positive")
	case o.EvalTimeInterval <= 0:
		return errors.New("EvalTimeInterval must be positive")
	default:
		return nil
	}
}
