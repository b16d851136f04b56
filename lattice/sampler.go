package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/geom"
)

// Sampler produces the per-cycle waypoint levels for one reference line.
// It holds no mutable state and may be reused across cycles.
type Sampler struct {
	ref  frenet.ReferenceLine
	opts Options
}

// NewSampler validates the options and binds the sampler to a reference
// line. Returns ErrNilReferenceLine or ErrBadOptions on invalid input.
func NewSampler(ref frenet.ReferenceLine, opts Options) (*Sampler, error) {
	if ref == nil {
		return nil, ErrNilReferenceLine
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOptions, err)
	}

	return &Sampler{ref: ref, opts: opts}, nil
}

// SampleWaypoints projects the vehicle position into the SL frame and
// generates the ordered waypoint levels ahead of it.
//
// Returns:
//
//   - initSL: the projected vehicle position (level 0 of the search).
//   - levels: non-empty stations, strictly increasing in s.
//   - err:    ErrProjection if the position is off the line's domain,
//     ErrEmptySampling if no station yields a drivable waypoint.
func (sm *Sampler) SampleWaypoints(pos geom.Vec2D, speed float64) (frenet.SLPoint, [][]frenet.SLPoint, error) {
	// 1) Project the start position; failure is fatal to the cycle.
	initSL, err := sm.ref.ProjectToFrenet(pos)
	if err != nil {
		return frenet.SLPoint{}, nil, fmt.Errorf("%w: position (%v, %v): %v", ErrProjection, pos.X, pos.Y, err)
	}

	// 2) Station spacing: vehicle speed clamped into the step bounds.
	levelDistance := math.Max(sm.opts.StepLengthMin, math.Min(speed, sm.opts.StepLengthMax))

	// 3) Advance station by station while still on the line.
	lineLength := sm.ref.TotalArcLength()
	num := sm.opts.SamplePointsNumEachLevel / 2
	levels := make([][]frenet.SLPoint, 0, sm.opts.SampleLevel)
	accumulatedS := initSL.S
	for i := 0; i < sm.opts.SampleLevel && accumulatedS < lineLength; i++ {
		accumulatedS += levelDistance
		s := math.Min(accumulatedS, lineLength)

		// 4) Symmetric lateral fan, filtered to the drivable surface.
		level := make([]frenet.SLPoint, 0, 2*num+1)
		for j := -num; j <= num; j++ {
			sl := frenet.SLPoint{S: s, L: sm.opts.LateralSampleOffset * float64(j)}
			if sm.ref.IsOnRoad(sl) {
				level = append(level, sl)
			}
		}
		if len(level) > 0 {
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		return frenet.SLPoint{}, nil, fmt.Errorf("%w: start s=%v, line length=%v", ErrEmptySampling, initSL.S, lineLength)
	}

	return initSL, levels, nil
}
