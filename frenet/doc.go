// Package frenet defines the shared data model of the planner and the
// narrow contracts of its external collaborators.
//
// Coordinate frames:
//
//   - SL (Frenet) frame — position expressed as arc length s along a
//     reference line plus signed lateral offset l (left positive).
//   - Cartesian frame — plain (x, y) with heading and curvature.
//
// This package holds:
//
//   - SLPoint, FramePoint, PathPoint and ReferencePoint value types
//   - FramePath, a dense arc-length-ordered Frenet sequence with linear
//     interpolation at arbitrary s
//   - Path, the per-cycle output container (Frenet sequence plus the
//     parallel Cartesian sequence), immutable once built
//   - the analytic SL transforms that recover heading, curvature and
//     lateral derivatives when moving between the two frames
//   - the collaborator interfaces the planner consumes: ReferenceLine,
//     SpeedProfile and CostEvaluator
//
// All types here are plain values created fresh each planning cycle;
// nothing in this package carries cross-cycle state.
package frenet
