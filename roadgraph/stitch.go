package roadgraph

import (
	"fmt"

	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/geom"
)

// stitch densifies the optimal chain into the per-cycle path container:
// Frenet samples at PathResolution spacing, then their Cartesian images
// with analytic heading/curvature and re-accumulated arc length.
func (g *RoadGraph) stitch(chain []node, start frenet.FramePoint) (*frenet.Path, error) {
	// 1) Densify each segment over [0, segLen) — the endpoint is covered
	//    by the next segment's first sample; the chain's final endpoint
	//    stays unsampled on purpose (see package doc).
	var framePath frenet.FramePath
	accumulatedS := chain[0].slPoint.S
	for i := 1; i < len(chain); i++ {
		segLen := chain[i].slPoint.S - chain[i-1].slPoint.S
		c := chain[i].curve
		for localS := 0.0; localS < segLen; localS += g.cfg.PathResolution {
			framePath = append(framePath, frenet.FramePoint{
				S:   accumulatedS + localS,
				L:   c.Evaluate(0, localS),
				DL:  c.Evaluate(1, localS),
				DDL: c.Evaluate(2, localS),
			})
		}
		// Advance by the full segment length regardless of how many
		// samples the resolution walk emitted.
		accumulatedS += segLen
	}

	// 2) Map every Frenet sample into the Cartesian frame.
	points := make([]frenet.PathPoint, 0, len(framePath))
	for _, fp := range framePath {
		pos, err := g.ref.ToCartesian(fp.SL())
		if err != nil {
			return nil, fmt.Errorf("%w: s=%v l=%v: %v", ErrFrameConversion, fp.S, fp.L, err)
		}
		refPt := g.ref.ReferencePointAt(fp.S)

		pp := frenet.PathPoint{
			X:     pos.X,
			Y:     pos.Y,
			Theta: frenet.Theta(refPt.Heading, refPt.Kappa, fp.L, fp.DL),
			Kappa: frenet.Kappa(refPt.Kappa, refPt.DKappa, fp.L, fp.DL, fp.DDL),
		}
		// Arc length restarts at zero and accumulates Euclidean distance
		// between consecutive samples, not the Frenet s.
		if n := len(points); n > 0 {
			pp.S = points[n-1].S + pos.DistanceTo(geom.Vec2D{X: points[n-1].X, Y: points[n-1].Y})
		}
		points = append(points, pp)
	}

	return &frenet.Path{Start: start, Frenet: framePath, Cartesian: points}, nil
}
