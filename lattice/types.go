package lattice

import "errors"

// Sentinel errors for waypoint sampling.
var (
	// ErrNilReferenceLine indicates a nil reference line was passed to NewSampler.
	ErrNilReferenceLine = errors.New("lattice: reference line is nil")

	// ErrBadOptions indicates an Options field is outside its valid range.
	ErrBadOptions = errors.New("lattice: invalid sampler options")

	// ErrProjection indicates the vehicle position could not be projected
	// onto the reference line (outside its domain). Fatal to the cycle.
	ErrProjection = errors.New("lattice: initial point projection failed")

	// ErrEmptySampling indicates no station produced any drivable
	// waypoint — including the degenerate case where the vehicle already
	// sits at or beyond the end of the reference line. Fatal to the cycle.
	ErrEmptySampling = errors.New("lattice: no drivable waypoints sampled")
)

// Options configures waypoint sampling.
//
// SampleLevel              – maximum number of longitudinal stations.
// SamplePointsNumEachLevel – lateral candidates proposed per station;
//
//	the effective count is 2·(n/2)+1, symmetric around the centerline.
//
// LateralSampleOffset      – spacing between adjacent lateral offsets, meters.
// StepLengthMin/Max        – clamp bounds for the speed-derived station spacing, meters.
type Options struct {
	SampleLevel              int
	SamplePointsNumEachLevel int
	LateralSampleOffset      float64
	StepLengthMin            float64
	StepLengthMax            float64
}

// DefaultOptions returns the sampling defaults tuned for urban driving:
// 8 stations of 9 candidates spaced 0.5 m apart, with station spacing
// clamped into [8, 15] m.
func DefaultOptions() Options {
	return Options{
		SampleLevel:              8,
		SamplePointsNumEachLevel: 9,
		LateralSampleOffset:      0.5,
		StepLengthMin:            8.0,
		StepLengthMax:            15.0,
	}
}

// validate reports whether every field is in range.
func (o Options) validate() error {
	switch {
	case o.SampleLevel <= 0:
		return errors.New("SampleLevel must be positive")
	case o.SamplePointsNumEachLevel <= 0:
		return errors.New("SamplePointsNumEachLevel must be positive")
	case o.LateralSampleOffset <= 0:
		return errors.New("LateralSampleOffset must be positive")
	case o.StepLengthMin <= 0:
		return errors.New("StepLengthMin must be positive")
	case o.StepLengthMax < o.StepLengthMin:
		return errors.New("StepLengthMax must be ≥ StepLengthMin")
	default:
		return nil
	}
}
