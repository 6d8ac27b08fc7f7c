// pkg/geom/vec.go
package geom

import "math"

// Vec is a point or displacement in world space (pixels).
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// Angle returns the direction from a to b in radians.
func Angle(from, to Vec) float64 { return math.Atan2(to.Y-from.Y, to.X-from.X) }

// FromAngle builds a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec {
	return Vec{math.Cos(angle) * length, math.Sin(angle) * length}
}
