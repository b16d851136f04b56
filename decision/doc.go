// Package decision classifies obstacles against a finished path:
// every obstacle of the current planning cycle receives exactly one
// appended decision describing how the vehicle should treat it.
//
// Static obstacles (fixed bounding box) are scanned along the discretized
// ego path, restricted to the obstacle's longitudinal influence window:
//
//   - Stop        — ego and obstacle boxes overlap and the obstacle sits
//     within StopBuffer of the centerline; scanning halts immediately.
//   - NudgeRight  — the obstacle is to the left of the ego sample within
//     IgnoreRange; steer right around it.
//   - NudgeLeft   — mirrored for obstacles on the right.
//   - Ignore      — no ego sample ever qualified.
//
// Dynamic obstacles (time-parameterized trajectory) are compared step by
// step against the ego position implied by the heuristic speed profile;
// the first time step whose box distance drops below FollowRange yields a
// Follow decision. Obstacles whose predicted time series does not align
// with the ego series are skipped with a log line — this is the only
// recoverable failure in the engine; everything else in the planner is
// fatal to the cycle.
//
// The decision container is borrowed from the caller: the engine appends
// decisions and never removes, reorders or resizes obstacles.
package decision
