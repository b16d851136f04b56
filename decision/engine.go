package decision

import (
	"fmt"
	"log"
	"math"

	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/geom"
)

// Engine classifies the obstacles of one planning cycle against the
// finished path. It holds no per-cycle state and may be reused.
type Engine struct {
	ref     frenet.ReferenceLine
	vehicle VehicleParam
	opts    Options
	logger  *log.Logger
}

// NewEngine validates the inputs and builds an engine. A nil logger
// falls back to log.Default(); recoverable per-obstacle failures are
// reported through it.
func NewEngine(ref frenet.ReferenceLine, vehicle VehicleParam, opts Options, logger *log.Logger) (*Engine, error) {
	if ref == nil {
		return nil, ErrNilReferenceLine
	}
	if vehicle.Length <= 0 || vehicle.Width <= 0 {
		return nil, fmt.Errorf("%w: length=%v width=%v", ErrBadVehicle, vehicle.Length, vehicle.Width)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOptions, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Engine{ref: ref, vehicle: vehicle, opts: opts, logger: logger}, nil
}

// Compute appends one decision per static obstacle and at most one
// Follow per dynamic obstacle. Per-obstacle failures are logged and
// skipped; only nil arguments are errors.
func (e *Engine) Compute(path *frenet.Path, speed frenet.SpeedProfile, data *Data) error {
	if path == nil {
		return ErrNilPath
	}
	if speed == nil {
		return ErrNilSpeedProfile
	}
	if data == nil {
		return ErrNilData
	}

	e.computeStatic(path, data.Static)
	e.computeDynamic(path, speed, data.Dynamic)

	return nil
}

// egoFootprint returns the box dimensions used for the ego vehicle.
// Both extents intentionally read the length parameter: the collision
// thresholds downstream were tuned against this footprint, so the width
// field is not consulted here.
func (e *Engine) egoFootprint() (length, width float64) {
	return e.vehicle.Length, e.vehicle.Length
}

// computeStatic runs the stop/nudge/ignore scan for every static obstacle.
func (e *Engine) computeStatic(path *frenet.Path, objects []*StaticObject) {
	// 1) Project every discretized ego sample once; boxes and SL points
	//    stay index-aligned because failed projections drop both.
	egoSL, egoBoxes := e.projectEgo(path)

	for _, obj := range objects {
		box := obj.Obstacle.BoundingBox()

		// 2) Project the obstacle center; failure means no sample can
		//    qualify, which is an Ignore by definition.
		obsSL, err := e.ref.ProjectToFrenet(box.Center())
		if err != nil {
			e.logger.Printf("decision: static obstacle projection failed at (%v, %v): %v",
				box.Center().X, box.Center().Y, err)
			obj.Decisions = append(obj.Decisions, Decision{Type: TypeIgnore})

			continue
		}

		// 3) Scan ego samples inside the obstacle's longitudinal window;
		//    the first qualifying sample decides and halts the scan.
		decided := false
		for j := range egoSL {
			if egoSL[j].S < obsSL.S-box.HalfLength() || egoSL[j].S > obsSL.S+box.HalfLength() {
				continue
			}

			if box.HasOverlap(egoBoxes[j]) && math.Abs(obsSL.L) < e.opts.StopBuffer {
				obj.Decisions = append(obj.Decisions, Decision{
					Type:      TypeStop,
					DistanceS: e.opts.DecisionBuffer,
					Reason:    StopReasonObstacle,
				})
				decided = true

				break
			}

			diffL := obsSL.L - egoSL[j].L
			if diffL > 0 && diffL < e.opts.IgnoreRange {
				// Obstacle to the left: go right.
				obj.Decisions = append(obj.Decisions, Decision{
					Type:      TypeNudgeRight,
					DistanceL: e.opts.DecisionBuffer,
				})
				decided = true

				break
			} else if diffL < 0 && -diffL < e.opts.IgnoreRange {
				// Obstacle to the right: go left.
				obj.Decisions = append(obj.Decisions, Decision{
					Type:      TypeNudgeLeft,
					DistanceL: e.opts.DecisionBuffer,
				})
				decided = true

				break
			}
		}

		if !decided {
			obj.Decisions = append(obj.Decisions, Decision{Type: TypeIgnore})
		}
	}
}

// computeDynamic runs the follow scan for every dynamic obstacle.
func (e *Engine) computeDynamic(path *frenet.Path, speed frenet.SpeedProfile, objects []*DynamicObject) {
	// 1) Number of aligned time samples over the bounded horizon.
	totalTime := math.Min(speed.TotalTime(), e.opts.PredictionHorizon)
	evaluateTimes := int(math.Floor(totalTime / e.opts.EvalTimeInterval))

	// 2) Ego boxes by time, shared by all obstacles. A failure leaves a
	//    truncated series; the per-obstacle alignment guard below then
	//    skips every obstacle rather than comparing misaligned boxes.
	egoByTime, err := e.egoByTime(path, speed, evaluateTimes)
	if err != nil {
		e.logger.Printf("decision: ego-by-time series truncated at %d of %d: %v",
			len(egoByTime), evaluateTimes, err)
	}

	for _, obj := range objects {
		obsByTime := make([]geom.Box2D, 0, evaluateTimes)
		for k := 0; k < evaluateTimes; k++ {
			tp := obj.Obstacle.PredictedStateAt(float64(k) * e.opts.EvalTimeInterval)
			obsByTime = append(obsByTime, obj.Obstacle.BoundingBoxAt(tp))
		}

		if len(obsByTime) != len(egoByTime) {
			e.logger.Printf("%v: obstacle has %d samples, ego has %d; skipping obstacle",
				ErrTimeSeriesMismatch, len(obsByTime), len(egoByTime))

			continue
		}

		// 3) First time step within following range decides.
		for k := range obsByTime {
			if egoByTime[k].DistanceTo(obsByTime[k]) < e.opts.FollowRange {
				obj.Decisions = append(obj.Decisions, Decision{
					Type:      TypeFollow,
					DistanceS: e.opts.DecisionBuffer,
				})

				break
			}
		}
	}
}

// projectEgo maps each Cartesian path sample into the SL frame and builds
// its footprint box. Samples whose projection fails are logged and
// dropped from both slices, keeping them index-aligned.
func (e *Engine) projectEgo(path *frenet.Path) ([]frenet.SLPoint, []geom.Box2D) {
	egoLen, egoWidth := e.egoFootprint()
	sl := make([]frenet.SLPoint, 0, len(path.Cartesian))
	boxes := make([]geom.Box2D, 0, len(path.Cartesian))
	for _, pp := range path.Cartesian {
		pos := geom.Vec2D{X: pp.X, Y: pp.Y}
		egoSL, err := e.ref.ProjectToFrenet(pos)
		if err != nil {
			e.logger.Printf("decision: ego sample projection failed at (%v, %v): %v", pp.X, pp.Y, err)

			continue
		}
		sl = append(sl, egoSL)
		boxes = append(boxes, geom.NewBox2D(pos, pp.Theta, egoLen, egoWidth))
	}

	return sl, boxes
}

// egoByTime builds the ego footprint at each time sample of the heuristic
// speed profile: profile arc length → dense Frenet interpolation →
// Cartesian pose with analytic heading. Stops early on the first profile
// or mapping failure, returning the boxes built so far.
func (e *Engine) egoByTime(path *frenet.Path, speed frenet.SpeedProfile, n int) ([]geom.Box2D, error) {
	egoLen, egoWidth := e.egoFootprint()
	boxes := make([]geom.Box2D, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * e.opts.EvalTimeInterval
		sp, err := speed.SpeedAt(t)
		if err != nil {
			return boxes, fmt.Errorf("speed profile at t=%v: %w", t, err)
		}

		fp := path.Frenet.Interpolate(sp.S)
		pos, err := e.ref.ToCartesian(fp.SL())
		if err != nil {
			return boxes, fmt.Errorf("frenet point (s=%v, l=%v) to cartesian: %w", fp.S, fp.L, err)
		}

		refPt := e.ref.ReferencePointAt(fp.S)
		theta := frenet.Theta(refPt.Heading, refPt.Kappa, fp.L, fp.DL)
		boxes = append(boxes, geom.NewBox2D(pos, theta, egoLen, egoWidth))
	}

	return boxes, nil
}
