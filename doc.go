// Package latpath is a single-cycle lateral path planner for road vehicles:
// it searches a lattice of candidate trajectories along a reference line and
// classifies nearby obstacles against the chosen path.
//
// 🚀 What is latpath?
//
//	A pure-algorithm library that brings together:
//		• Quintic polynomial lateral profiles with closed boundary conditions
//		• Speed-adaptive, road-legal lattice sampling in the Frenet frame
//		• Forward dynamic-programming search over station levels with
//		  analytic edge costs and index-based backtracking
//		• Dense Frenet→Cartesian path stitching with analytic heading and
//		  curvature recovery
//		• Obstacle classification: stop, left/right nudge, follow, ignore
//
// ✨ Why choose latpath?
//
//   - Deterministic – one synchronous pass per planning cycle, no hidden state
//   - Collaborator-driven – reference line, speed profile and cost model are
//     narrow interfaces you implement; the search owns nothing external
//   - Fail-closed – a cycle either yields a complete path or a typed error,
//     never a partial result
//
// Everything is organized under six subpackages:
//
//	geom/      — 2-D vectors, oriented boxes, angle normalization
//	curve/     — quintic polynomial lateral profiles over an arc-length span
//	frenet/    — SL/Frenet/Cartesian point types, path container,
//	             analytic SL transforms, collaborator interfaces
//	lattice/   — layered waypoint sampling along the reference line
//	roadgraph/ — DP graph search, path stitching, FindPathTunnel entry point
//	decision/  — per-obstacle stop/nudge/follow/ignore classification
//
// Control flow of one planning cycle:
//
//	Sampler ──▶ DP Graph Search ──▶ Stitcher/Converter ──▶ Decision Engine
//
// Start with roadgraph.New and (*roadgraph.RoadGraph).FindPathTunnel.
package latpath
