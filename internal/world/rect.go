package world

// Rect is an axis-aligned rectangle used for rooms.
// X2 and Y2 are X1+width and Y1+height.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle with its top-left corner at (x, y).
// Width and height are not validated; callers pass positive dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects reports whether r overlaps other. Edges are inclusive, so rooms
// that merely share a border count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point lies in the carved interior of the room.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}
