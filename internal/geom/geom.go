package geom

// Point is a position in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// OverlapsX reports whether two rectangles overlap when projected onto the
// X axis. Touching edges do not count as overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX()
}

// OverlapsY reports whether two rectangles overlap when projected onto the
// Y axis. Touching edges do not count as overlap.
func (r Rect) OverlapsY(o Rect) bool {
	return r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Intersects reports whether two rectangles overlap on both axes.
func (r Rect) Intersects(o Rect) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
}

// Polyline is an ordered sequence of points. The river flow builder emits
// one polyline per participant path.
type Polyline struct {
	Points []Point `json:"points"`
}

// Append returns a new polyline with p added at the end. The receiver is
// not modified; paths are built functionally so layouts stay immutable.
func (l Polyline) Append(p Point) Polyline {
	pts := make([]Point, len(l.Points), len(l.Points)+1)
	copy(pts, l.Points)
	return Polyline{Points: append(pts, p)}
}
