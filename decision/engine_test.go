package decision_test

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latpath/decision"
	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/geom"
)

// straightLine is a reference line along +X of fixed length, with a
// drivable corridor |l| ≤ halfWidth. s maps to x and l to y.
type straightLine struct {
	length    float64
	halfWidth float64
}

func (r *straightLine) ProjectToFrenet(p geom.Vec2D) (frenet.SLPoint, error) {
	if p.X < 0 || p.X > r.length {
		return frenet.SLPoint{}, fmt.Errorf("x=%v outside [0, %v]", p.X, r.length)
	}

	return frenet.SLPoint{S: p.X, L: p.Y}, nil
}

func (r *straightLine) ToCartesian(sl frenet.SLPoint) (geom.Vec2D, error) {
	if sl.S < 0 || sl.S > r.length {
		return geom.Vec2D{}, fmt.Errorf("s=%v outside [0, %v]", sl.S, r.length)
	}

	return geom.Vec2D{X: sl.S, Y: sl.L}, nil
}

func (r *straightLine) ReferencePointAt(float64) frenet.ReferencePoint {
	return frenet.ReferencePoint{}
}

func (r *straightLine) IsOnRoad(sl frenet.SLPoint) bool {
	return sl.S >= 0 && sl.S <= r.length && sl.L >= -r.halfWidth && sl.L <= r.halfWidth
}

func (r *straightLine) TotalArcLength() float64 { return r.length }

// staticBox is a static obstacle with a fixed footprint.
type staticBox struct{ box geom.Box2D }

func (o *staticBox) BoundingBox() geom.Box2D { return o.box }

// cruiser is a dynamic obstacle moving at constant velocity from start.
type cruiser struct {
	start geom.Vec2D
	vx    float64
	size  float64
}

func (o *cruiser) PredictedStateAt(t float64) decision.TrajectoryPoint {
	return decision.TrajectoryPoint{
		Position: geom.Vec2D{X: o.start.X + o.vx*t, Y: o.start.Y},
		T:        t,
	}
}

func (o *cruiser) BoundingBoxAt(p decision.TrajectoryPoint) geom.Box2D {
	return geom.NewBox2D(p.Position, p.Theta, o.size, o.size)
}

// constSpeed is a heuristic speed profile at constant speed v, optionally
// failing all queries past failAfter (failAfter ≤ 0 never fails).
type constSpeed struct {
	v         float64
	total     float64
	failAfter float64
}

func (p *constSpeed) SpeedAt(t float64) (frenet.SpeedPoint, error) {
	if p.failAfter > 0 && t > p.failAfter {
		return frenet.SpeedPoint{}, fmt.Errorf("no sample at t=%v", t)
	}

	return frenet.SpeedPoint{T: t, S: p.v * t, V: p.v}, nil
}

func (p *constSpeed) TotalTime() float64 { return p.total }

// straightPath builds a centered path along the line: one sample per
// meter in both the Frenet and Cartesian sequences.
func straightPath(length float64) *frenet.Path {
	n := int(length) + 1
	path := &frenet.Path{
		Frenet:    make(frenet.FramePath, 0, n),
		Cartesian: make([]frenet.PathPoint, 0, n),
	}
	for i := 0; i < n; i++ {
		s := float64(i)
		path.Frenet = append(path.Frenet, frenet.FramePoint{S: s})
		path.Cartesian = append(path.Cartesian, frenet.PathPoint{X: s, S: s})
	}

	return path
}

func newTestEngine(t *testing.T, line *straightLine, logger *log.Logger) *decision.Engine {
	t.Helper()
	eng, err := decision.NewEngine(line, decision.VehicleParam{Length: 4, Width: 2}, decision.DefaultOptions(), logger)
	require.NoError(t, err)

	return eng
}

// TestNewEngine_Validation covers the constructor preconditions.
func TestNewEngine_Validation(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}

	_, err := decision.NewEngine(nil, decision.VehicleParam{Length: 4, Width: 2}, decision.DefaultOptions(), nil)
	assert.ErrorIs(t, err, decision.ErrNilReferenceLine)

	_, err = decision.NewEngine(line, decision.VehicleParam{Length: 0, Width: 2}, decision.DefaultOptions(), nil)
	assert.ErrorIs(t, err, decision.ErrBadVehicle)

	opts := decision.DefaultOptions()
	opts.EvalTimeInterval = 0
	_, err = decision.NewEngine(line, decision.VehicleParam{Length: 4, Width: 2}, opts, nil)
	assert.ErrorIs(t, err, decision.ErrBadOptions)
}

// TestCompute_NilArguments: nil path, profile or container are the only
// hard errors the engine reports.
func TestCompute_NilArguments(t *testing.T) {
	eng := newTestEngine(t, &straightLine{length: 100, halfWidth: 3}, nil)
	speed := &constSpeed{v: 5, total: 10}

	assert.ErrorIs(t, eng.Compute(nil, speed, &decision.Data{}), decision.ErrNilPath)
	assert.ErrorIs(t, eng.Compute(straightPath(30), nil, &decision.Data{}), decision.ErrNilSpeedProfile)
	assert.ErrorIs(t, eng.Compute(straightPath(30), speed, nil), decision.ErrNilData)
}

// TestCompute_ScenarioB_Stop: an obstacle square in the corridor with an
// overlapping box and |l| under the stop buffer yields exactly one Stop,
// and the scan halts at the first qualifying sample.
func TestCompute_ScenarioB_Stop(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}
	eng := newTestEngine(t, line, nil)

	obj := &decision.StaticObject{
		Obstacle: &staticBox{box: geom.NewBox2D(geom.Vec2D{X: 10, Y: 0.2}, 0, 2, 2)},
	}
	data := &decision.Data{Static: []*decision.StaticObject{obj}}

	require.NoError(t, eng.Compute(straightPath(30), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, obj.Decisions, 1, "exactly one decision per obstacle per cycle")
	assert.Equal(t, decision.TypeStop, obj.Decisions[0].Type)
	assert.Equal(t, decision.StopReasonObstacle, obj.Decisions[0].Reason)
	assert.InDelta(t, 0.5, obj.Decisions[0].DistanceS, 1e-9, "fixed forward buffer")
}

// TestCompute_NudgeSides: obstacles beside the corridor produce a single
// nudge away from them.
func TestCompute_NudgeSides(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 5}
	eng := newTestEngine(t, line, nil)

	left := &decision.StaticObject{
		Obstacle: &staticBox{box: geom.NewBox2D(geom.Vec2D{X: 10, Y: 2.8}, 0, 1, 1)},
	}
	right := &decision.StaticObject{
		Obstacle: &staticBox{box: geom.NewBox2D(geom.Vec2D{X: 20, Y: -2.8}, 0, 1, 1)},
	}
	data := &decision.Data{Static: []*decision.StaticObject{left, right}}

	require.NoError(t, eng.Compute(straightPath(30), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, left.Decisions, 1)
	assert.Equal(t, decision.TypeNudgeRight, left.Decisions[0].Type, "obstacle on the left → go right")
	assert.InDelta(t, 0.5, left.Decisions[0].DistanceL, 1e-9)

	require.Len(t, right.Decisions, 1)
	assert.Equal(t, decision.TypeNudgeLeft, right.Decisions[0].Type, "obstacle on the right → go left")
}

// TestCompute_StaticIgnore: an obstacle too far laterally for any rule
// gets a single Ignore.
func TestCompute_StaticIgnore(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 20}
	eng := newTestEngine(t, line, nil)

	obj := &decision.StaticObject{
		Obstacle: &staticBox{box: geom.NewBox2D(geom.Vec2D{X: 10, Y: 15}, 0, 1, 1)},
	}
	data := &decision.Data{Static: []*decision.StaticObject{obj}}

	require.NoError(t, eng.Compute(straightPath(30), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, obj.Decisions, 1)
	assert.Equal(t, decision.TypeIgnore, obj.Decisions[0].Type)
}

// TestCompute_StaticProjectionFailure: an obstacle off the line's domain
// is logged and classified Ignore; the cycle survives.
func TestCompute_StaticProjectionFailure(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}
	var buf bytes.Buffer
	eng := newTestEngine(t, line, log.New(&buf, "", 0))

	obj := &decision.StaticObject{
		Obstacle: &staticBox{box: geom.NewBox2D(geom.Vec2D{X: -40}, 0, 1, 1)},
	}
	data := &decision.Data{Static: []*decision.StaticObject{obj}}

	require.NoError(t, eng.Compute(straightPath(30), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, obj.Decisions, 1)
	assert.Equal(t, decision.TypeIgnore, obj.Decisions[0].Type)
	assert.Contains(t, buf.String(), "projection failed")
}

// TestCompute_Follow: a dynamic obstacle crossing within the follow range
// of the ego-by-time series yields exactly one Follow.
func TestCompute_Follow(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}
	eng := newTestEngine(t, line, nil)

	// Ego advances at 5 m/s; a slower car sits 10 m ahead in-lane.
	obj := &decision.DynamicObject{
		Obstacle: &cruiser{start: geom.Vec2D{X: 10}, vx: 1, size: 2},
	}
	data := &decision.Data{Dynamic: []*decision.DynamicObject{obj}}

	require.NoError(t, eng.Compute(straightPath(60), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, obj.Decisions, 1, "first qualifying time step decides, scan halts")
	assert.Equal(t, decision.TypeFollow, obj.Decisions[0].Type)
	assert.InDelta(t, 0.5, obj.Decisions[0].DistanceS, 1e-9)
}

// TestCompute_ScenarioC_DynamicNeverClose: a dynamic obstacle that never
// comes near the ego-by-time boxes gets zero decisions.
func TestCompute_ScenarioC_DynamicNeverClose(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 60}
	eng := newTestEngine(t, line, nil)

	obj := &decision.DynamicObject{
		Obstacle: &cruiser{start: geom.Vec2D{X: 10, Y: 50}, vx: 1, size: 2},
	}
	data := &decision.Data{Dynamic: []*decision.DynamicObject{obj}}

	require.NoError(t, eng.Compute(straightPath(60), &constSpeed{v: 5, total: 10}, data))

	assert.Empty(t, obj.Decisions, "no decision is appended for a clear dynamic obstacle")
}

// TestCompute_TimeSeriesMismatch: a speed profile failing mid-horizon
// truncates the ego series; the obstacle is skipped with a log line and
// no decision, and the cycle still succeeds.
func TestCompute_TimeSeriesMismatch(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}
	var buf bytes.Buffer
	eng := newTestEngine(t, line, log.New(&buf, "", 0))

	obj := &decision.DynamicObject{
		Obstacle: &cruiser{start: geom.Vec2D{X: 10}, vx: 1, size: 2},
	}
	data := &decision.Data{Dynamic: []*decision.DynamicObject{obj}}

	speed := &constSpeed{v: 5, total: 10, failAfter: 2}
	require.NoError(t, eng.Compute(straightPath(60), speed, data))

	assert.Empty(t, obj.Decisions, "skipped obstacle receives no decision")
	assert.Contains(t, buf.String(), "mismatch")
}

// TestCompute_AppendOnly: the engine appends after existing decisions and
// never clears them.
func TestCompute_AppendOnly(t *testing.T) {
	line := &straightLine{length: 100, halfWidth: 3}
	eng := newTestEngine(t, line, nil)

	prior := decision.Decision{Type: decision.TypeFollow, DistanceS: 1}
	obj := &decision.StaticObject{
		Obstacle:  &staticBox{box: geom.NewBox2D(geom.Vec2D{X: 10, Y: 0.2}, 0, 2, 2)},
		Decisions: []decision.Decision{prior},
	}
	data := &decision.Data{Static: []*decision.StaticObject{obj}}

	require.NoError(t, eng.Compute(straightPath(30), &constSpeed{v: 5, total: 10}, data))

	require.Len(t, obj.Decisions, 2, "prior decision retained")
	assert.Equal(t, prior, obj.Decisions[0])
	assert.Equal(t, decision.TypeStop, obj.Decisions[1].Type)
}
