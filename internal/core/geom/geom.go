// Package geom holds the small set of 2D types shared by the world,
// the entities and the renderer.
package geom

// PointF is a position in world space, in pixels.
type PointF struct {
	X, Y float64
}

// Point is an integer position, used for camera offsets and tile anchors.
type Point struct {
	X, Y int
}

// Rect is an integer axis-aligned rectangle.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether the two rectangles share at least one pixel.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1 following the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
