// Package geom provides the small set of planar primitives the planner
// needs: 2-D vectors, axis-normalized angles, and oriented bounding boxes
// with overlap and distance queries.
//
// Conventions:
//
//   - Angles are radians, measured counter-clockwise from the +X axis,
//     and normalized into (-π, π] by NormalizeAngle.
//   - Box2D is an oriented rectangle given by center, heading, length
//     (extent along the heading) and width (extent across it).
//   - Overlap uses the separating-axis theorem on the four face normals
//     of the two rectangles; distance is zero for overlapping boxes and
//     the minimum edge-to-edge distance otherwise.
//
// Complexity: every operation in this package is O(1) (boxes have a
// constant number of corners and axes).
package geom
