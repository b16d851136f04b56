package geom

import "math"

// Box2D is an oriented rectangle in the plane: a center, a heading, and
// the full extents along (length) and across (width) that heading.
// Construct with NewBox2D; the zero value is a degenerate point box.
type Box2D struct {
	center  Vec2D
	heading float64
	length  float64
	width   float64

	// cached unit axes: ax along the heading, ay across it
	ax, ay Vec2D
}

// NewBox2D builds an oriented box from its center, heading (radians, CCW
// from +X) and full length/width. Non-positive extents are allowed and
// produce a degenerate (segment or point) box; callers that care should
// validate upstream.
func NewBox2D(center Vec2D, heading, length, width float64) Box2D {
	sin, cos := math.Sincos(heading)

	return Box2D{
		center:  center,
		heading: heading,
		length:  length,
		width:   width,
		ax:      Vec2D{X: cos, Y: sin},
		ay:      Vec2D{X: -sin, Y: cos},
	}
}

// Center returns the box center.
func (b Box2D) Center() Vec2D { return b.center }

// Heading returns the box heading in radians.
func (b Box2D) Heading() float64 { return b.heading }

// Length returns the full extent along the heading.
func (b Box2D) Length() float64 { return b.length }

// Width returns the full extent across the heading.
func (b Box2D) Width() float64 { return b.width }

// HalfLength returns half the extent along the heading. The obstacle
// decision engine uses it as the longitudinal influence window.
func (b Box2D) HalfLength() float64 { return b.length / 2 }

// HalfWidth returns half the extent across the heading.
func (b Box2D) HalfWidth() float64 { return b.width / 2 }

// Corners returns the four corners in CCW order starting from the
// front-left corner (+length/2, +width/2 in box frame).
func (b Box2D) Corners() [4]Vec2D {
	dl := b.ax.Scale(b.length / 2)
	dw := b.ay.Scale(b.width / 2)

	return [4]Vec2D{
		b.center.Add(dl).Add(dw),
		b.center.Sub(dl).Add(dw),
		b.center.Sub(dl).Sub(dw),
		b.center.Add(dl).Sub(dw),
	}
}

// HasOverlap reports whether b and o intersect, using the separating-axis
// theorem over the four face normals of the two rectangles.
// Complexity: O(1) — 4 axes × 8 corner projections.
func (b Box2D) HasOverlap(o Box2D) bool {
	axes := [4]Vec2D{b.ax, b.ay, o.ax, o.ay}
	bc, oc := b.Corners(), o.Corners()
	for _, axis := range axes {
		bMin, bMax := projectOnto(axis, bc)
		oMin, oMax := projectOnto(axis, oc)
		if bMax < oMin || oMax < bMin {
			return false // separating axis found
		}
	}

	return true
}

// DistanceTo returns the minimum Euclidean distance between b and o:
// zero if they overlap, otherwise the smallest edge-to-edge distance.
// Complexity: O(1) — 16 segment pairs.
func (b Box2D) DistanceTo(o Box2D) float64 {
	if b.HasOverlap(o) {
		return 0
	}
	bc, oc := b.Corners(), o.Corners()
	min := math.Inf(1)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := segmentDistance(bc[i], bc[(i+1)%4], oc[j], oc[(j+1)%4])
			if d < min {
				min = d
			}
		}
	}

	return min
}

// projectOnto projects the corners onto the (unit) axis and returns the
// interval [min, max] of the projections.
func projectOnto(axis Vec2D, corners [4]Vec2D) (float64, float64) {
	min := axis.Dot(corners[0])
	max := min
	for _, c := range corners[1:] {
		p := axis.Dot(c)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return min, max
}

// pointSegmentDistance returns the distance from p to segment [a, b].
func pointSegmentDistance(p, a, b Vec2D) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.DistanceTo(a) // degenerate segment
	}
	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.DistanceTo(a.Add(ab.Scale(t)))
}

// segmentDistance returns the minimum distance between segments [a1, a2]
// and [b1, b2]. Proper intersection yields zero; otherwise the minimum is
// attained at an endpoint against the opposite segment.
func segmentDistance(a1, a2, b1, b2 Vec2D) float64 {
	if segmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	d := pointSegmentDistance(a1, b1, b2)
	if v := pointSegmentDistance(a2, b1, b2); v < d {
		d = v
	}
	if v := pointSegmentDistance(b1, a1, a2); v < d {
		d = v
	}
	if v := pointSegmentDistance(b2, a1, a2); v < d {
		d = v
	}

	return d
}

// segmentsIntersect reports whether the two segments properly cross.
// Touching and collinear cases are left to the endpoint distance checks
// in segmentDistance, which already yield zero for contact.
func segmentsIntersect(a1, a2, b1, b2 Vec2D) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))

	return d1*d2 < 0 && d3*d4 < 0
}
