package frenet

// SLPoint is a position in the Frenet frame of a reference line:
// arc length s along the line and signed lateral offset l (left positive).
type SLPoint struct {
	S, L float64
}

// FramePoint is an SLPoint enriched with the first and second derivatives
// of the lateral offset with respect to arc length. Produced only by
// curve evaluation or by recovering the initial vehicle state.
type FramePoint struct {
	S, L, DL, DDL float64
}

// SL returns the positional part of the frame point.
func (p FramePoint) SL() SLPoint { return SLPoint{S: p.S, L: p.L} }

// PathPoint is a Cartesian sample of the finished path: position,
// heading, curvature and the running arc length accumulated as Euclidean
// distance between consecutive samples (not copied from the Frenet s).
type PathPoint struct {
	X, Y  float64
	Theta float64
	Kappa float64
	S     float64
}

// ReferencePoint is the local geometry of the reference line at some arc
// length: heading, curvature and the derivative of curvature w.r.t. s.
type ReferencePoint struct {
	Heading float64
	Kappa   float64
	DKappa  float64
}
