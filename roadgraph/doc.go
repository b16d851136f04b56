// Package roadgraph runs one planning cycle end to end: it samples the
// waypoint lattice, searches it with forward dynamic programming, stitches
// the winning chain into a dense path, and hands the path to the obstacle
// decision engine.
//
// Search formulation:
//
//   - Level 0 is a synthetic root holding the projected vehicle start
//     state with cost 0 and no predecessor.
//   - Every node of level k is connected to every node of level k-1 by a
//     quintic lateral profile whose boundary derivatives are forced to
//     zero at both stations — an explicit policy: lateral velocity and
//     acceleration reset at every lattice station.
//   - The externally supplied CostEvaluator scores each edge; nodes relax
//     on strict improvement only, so the first of equal-cost predecessors
//     wins and the search is deterministic.
//   - A synthetic sink aggregates the last level at no extra cost; the
//     optimal chain is recovered by walking (level, index) back-pointers —
//     plain index arithmetic over contiguous per-level slices, no pointer
//     chasing across reallocations.
//
// Stitching walks each chain segment at PathResolution increments while
// the local arc length is strictly below the segment length, so a segment
// endpoint is emitted as the next segment's first sample and the final
// chain endpoint is omitted — downstream consumers were tuned against
// exactly this discretization. Heading and curvature are derived
// analytically from the Frenet state; the Cartesian arc length is
// re-accumulated as Euclidean distance between consecutive samples rather
// than copied from the Frenet s.
//
// Failure model: projection, sampling and search failures abort the cycle
// with a typed error and no partial path; only per-obstacle decision
// failures are recovered (see package decision).
package roadgraph
