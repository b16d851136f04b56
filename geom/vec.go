package geom

import "math"

// Vec2D is a point or displacement in the plane.
type Vec2D struct {
	X, Y float64
}

// Add returns v + u.
func (v Vec2D) Add(u Vec2D) Vec2D { return Vec2D{X: v.X + u.X, Y: v.Y + u.Y} }

// Sub returns v - u.
func (v Vec2D) Sub(u Vec2D) Vec2D { return Vec2D{X: v.X - u.X, Y: v.Y - u.Y} }

// Scale returns v scaled by k.
func (v Vec2D) Scale(k float64) Vec2D { return Vec2D{X: v.X * k, Y: v.Y * k} }

// Dot returns the dot product v·u.
func (v Vec2D) Dot(u Vec2D) float64 { return v.X*u.X + v.Y*u.Y }

// Cross returns the z-component of the cross product v×u.
func (v Vec2D) Cross(u Vec2D) float64 { return v.X*u.Y - v.Y*u.X }

// Length returns the Euclidean norm of v.
func (v Vec2D) Length() float64 { return math.Hypot(v.X, v.Y) }

// DistanceTo returns the Euclidean distance between v and u.
func (v Vec2D) DistanceTo(u Vec2D) float64 { return v.Sub(u).Length() }

// NormalizeAngle wraps a into the interval (-π, π].
// Complexity: O(1).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}

	return a
}
