// Package lattice samples the layered set of candidate waypoints the DP
// search runs over: longitudinal stations along the reference line times
// symmetric lateral offsets around the centerline.
//
// Sampling policy:
//
//  1. The vehicle position is projected into the reference line's SL
//     frame; a failed projection fails the whole cycle.
//  2. The station spacing is the vehicle speed clamped into
//     [StepLengthMin, StepLengthMax] — faster vehicles look farther
//     ahead per level, bounded both ways.
//  3. Up to SampleLevel stations are generated while the accumulated arc
//     length stays within the line; each station's s is clamped to the
//     line end. At each station, SamplePointsNumEachLevel offsets
//     j·LateralSampleOffset for j ∈ [-num, num] (num = count/2) are
//     proposed and filtered through ReferenceLine.IsOnRoad.
//  4. Stations whose offsets are all off-road are dropped whole; if no
//     station survives, sampling fails with ErrEmptySampling.
//
// The produced levels are strictly ordered by increasing s, which is what
// lets the graph search store back-pointers as plain (level, index) pairs.
//
// Complexity: O(SampleLevel × SamplePointsNumEachLevel) road queries.
package lattice
