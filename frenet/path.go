package frenet

import "sort"

// FramePath is a dense, arc-length-ordered sequence of Frenet samples.
// The stitcher produces it at a fixed resolution; consumers must treat it
// as immutable.
type FramePath []FramePoint

// Interpolate returns the frame point at arbitrary arc length s by linear
// blending of the two bracketing samples. Queries before the first sample
// clamp to the front, queries past the last clamp to the back. An empty
// path returns the zero FramePoint.
// Complexity: O(log n) binary search.
func (fp FramePath) Interpolate(s float64) FramePoint {
	if len(fp) == 0 {
		return FramePoint{}
	}
	if s <= fp[0].S {
		return fp[0]
	}
	if s >= fp[len(fp)-1].S {
		return fp[len(fp)-1]
	}

	// First sample at or beyond s; i ≥ 1 because of the front clamp.
	i := sort.Search(len(fp), func(k int) bool { return fp[k].S >= s })
	lo, hi := fp[i-1], fp[i]
	if hi.S == lo.S {
		return hi
	}
	w := (s - lo.S) / (hi.S - lo.S)

	return FramePoint{
		S:   s,
		L:   lo.L + w*(hi.L-lo.L),
		DL:  lo.DL + w*(hi.DL-lo.DL),
		DDL: lo.DDL + w*(hi.DDL-lo.DDL),
	}
}

// Path is the output container of one planning cycle: the recovered
// start state, the dense Frenet sequence and the parallel Cartesian
// sequence. It is created once per cycle and never mutated afterwards.
type Path struct {
	// Start is the vehicle state projected into the Frenet frame at the
	// beginning of the cycle, with dl/ddl recovered analytically from the
	// vehicle heading and curvature.
	Start FramePoint

	// Frenet holds the resolution-spaced Frenet samples of the chosen
	// tunnel.
	Frenet FramePath

	// Cartesian holds one PathPoint per Frenet sample, with heading and
	// curvature derived analytically and S accumulated as Euclidean
	// distance between consecutive points.
	Cartesian []PathPoint
}
