package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Size represents 2D dimensions
// Components are expected to be non-negative; negative values are a caller error
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle anchored at Origin
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a rectangle from x, y, w, h
func NewRect(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Contains reports whether p lies within the rectangle, edges inclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.H
}

// Intersect returns the overlap of two rectangles
// A zero-size rectangle is returned when they do not overlap
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.Origin.X, other.Origin.X)
	y1 := max(r.Origin.Y, other.Origin.Y)
	x2 := min(r.Origin.X+r.Size.W, other.Origin.X+other.Size.W)
	y2 := min(r.Origin.Y+r.Size.H, other.Origin.Y+other.Size.H)

	if x2 < x1 || y2 < y1 {
		return Rect{Origin: Point{X: x1, Y: y1}}
	}
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}
