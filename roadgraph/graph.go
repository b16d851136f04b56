package roadgraph

import (
	"fmt"
	"log"

	"github.com/katalvlaran/latpath/curve"
	"github.com/katalvlaran/latpath/decision"
	"github.com/katalvlaran/latpath/frenet"
	"github.com/katalvlaran/latpath/lattice"
)

// RoadGraph plans one lateral path per call against a fixed reference
// line, heuristic speed profile and cost model. It holds no per-cycle
// state and may be reused across cycles.
type RoadGraph struct {
	cfg     Config
	ref     frenet.ReferenceLine
	speed   frenet.SpeedProfile
	cost    frenet.CostEvaluator
	sampler *lattice.Sampler
	engine  *decision.Engine
	logger  *log.Logger
}

// New validates the collaborators and configuration and assembles the
// planner. A nil logger falls back to log.Default().
func New(cfg Config, ref frenet.ReferenceLine, speed frenet.SpeedProfile, cost frenet.CostEvaluator, logger *log.Logger) (*RoadGraph, error) {
	if ref == nil {
		return nil, ErrNilReferenceLine
	}
	if speed == nil {
		return nil, ErrNilSpeedProfile
	}
	if cost == nil {
		return nil, ErrNilCostEvaluator
	}
	if cfg.PathResolution <= 0 {
		return nil, fmt.Errorf("%w: PathResolution must be positive, got %v", ErrBadConfig, cfg.PathResolution)
	}
	if logger == nil {
		logger = log.Default()
	}

	sampler, err := lattice.NewSampler(ref, cfg.Lattice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	engine, err := decision.NewEngine(ref, cfg.Vehicle, cfg.Decision, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return &RoadGraph{
		cfg:     cfg,
		ref:     ref,
		speed:   speed,
		cost:    cost,
		sampler: sampler,
		engine:  engine,
		logger:  logger,
	}, nil
}

// FindPathTunnel runs one complete planning cycle:
//
//	sample lattice → DP search → stitch/convert → classify obstacles
//
// On success it returns the populated path container and appends one
// decision per obstacle into data. Any stage failure before decision
// computation aborts the cycle with a typed error and data untouched.
func (g *RoadGraph) FindPathTunnel(init VehicleState, data *decision.Data) (*frenet.Path, error) {
	if data == nil {
		return nil, ErrNilDecisionData
	}

	// 1) Sample the waypoint lattice ahead of the vehicle.
	initSL, levels, err := g.sampler.SampleWaypoints(init.Position, init.Speed)
	if err != nil {
		return nil, err
	}

	// 2) Search it.
	chain, err := g.search(initSL, levels)
	if err != nil {
		return nil, err
	}

	// 3) Stitch the winning chain into a dense path.
	path, err := g.stitch(chain, g.recoverStart(initSL, init))
	if err != nil {
		return nil, err
	}

	// 4) Classify obstacles against the finished path. Per-obstacle
	//    failures are already recovered inside the engine; a hard error
	//    here means a nil collaborator and cannot happen past New.
	if err := g.engine.Compute(path, g.speed, data); err != nil {
		g.logger.Printf("roadgraph: decision computation failed: %v", err)
	}

	return path, nil
}

// recoverStart rebuilds the full Frenet start state from the Cartesian
// vehicle state: dl/ddl follow analytically from the heading and
// curvature difference against the reference line.
func (g *RoadGraph) recoverStart(initSL frenet.SLPoint, init VehicleState) frenet.FramePoint {
	refPt := g.ref.ReferencePointAt(initSL.S)

	return frenet.FramePoint{
		S:  initSL.S,
		L:  initSL.L,
		DL: frenet.LateralDerivative(refPt.Heading, init.Theta, initSL.L, refPt.Kappa),
		DDL: frenet.SecondOrderLateralDerivative(
			refPt.Heading, init.Theta, refPt.Kappa, init.Kappa, refPt.DKappa, initSL.L),
	}
}

// search runs the forward DP over the sampled levels and backtracks the
// minimum-cost chain root→goal. Returns ErrSearchFailure when no node of
// the final level is reachable.
func (g *RoadGraph) search(initSL frenet.SLPoint, levels [][]frenet.SLPoint) ([]node, error) {
	// 1) Arena: level 0 is the synthetic root at the projected start.
	nodes := make([][]node, len(levels)+1)
	nodes[0] = []node{{slPoint: initSL, prev: rootRef, relaxed: true}}

	// 2) Forward relaxation, level by level, fixed predecessor order.
	for level := 1; level < len(nodes); level++ {
		prevNodes := nodes[level-1]
		points := levels[level-1]
		nodes[level] = make([]node, 0, len(points))
		for _, sl := range points {
			cur := node{slPoint: sl, prev: rootRef}
			for j := range prevNodes {
				p := &prevNodes[j]
				if !p.relaxed {
					continue // unreachable predecessor
				}
				span := sl.S - p.slPoint.S
				if span <= 0 {
					continue // degenerate station spacing
				}

				// Boundary derivatives forced to zero at both stations.
				c, err := curve.NewQuintic(
					p.slPoint.L, stationBoundaryDL, stationBoundaryDDL,
					sl.L, stationBoundaryDL, stationBoundaryDDL, span)
				if err != nil {
					g.logger.Printf("roadgraph: edge curve fit failed (%v→%v): %v", p.slPoint, sl, err)

					continue
				}

				// 3) Relax on strict improvement only: the first of
				//    equal-cost predecessors keeps the node.
				total := g.cost.Evaluate(c, p.slPoint.S, sl.S) + p.minCost
				if !cur.relaxed || total < cur.minCost {
					cur.minCost = total
					cur.curve = c
					cur.prev = nodeRef{level: level - 1, index: j}
					cur.relaxed = true
				}
			}
			nodes[level] = append(nodes[level], cur)
		}
	}

	// 4) Synthetic sink: aggregate the last level at no extra cost.
	last := len(nodes) - 1
	sink := rootRef
	var sinkCost float64
	for i := range nodes[last] {
		n := &nodes[last][i]
		if !n.relaxed {
			continue
		}
		if sink == rootRef || n.minCost < sinkCost {
			sink = nodeRef{level: last, index: i}
			sinkCost = n.minCost
		}
	}
	if sink == rootRef {
		return nil, fmt.Errorf("%w: %d levels sampled", ErrSearchFailure, len(levels))
	}

	// 5) Backtrack by index arithmetic and reverse into root→goal order.
	var chain []node
	for ref := sink; ref != rootRef; ref = nodes[ref.level][ref.index].prev {
		chain = append(chain, nodes[ref.level][ref.index])
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	return chain, nil
}
