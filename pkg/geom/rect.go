// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle; (X, Y) is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Box returns a size×size square centered on c. All hit boxes are built this way.
func Box(c Vec, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

// Intersects reports a strict overlap. Rectangles that only share an edge do not collide.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// IntersectsAny reports whether r overlaps at least one of rects.
func (r Rect) IntersectsAny(rects []Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
