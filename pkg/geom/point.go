package geom

// Point is a mutable 2D coordinate. Unlike [Vector], a Point has identity:
// gradients and per-point optimizer state are keyed by the pointer to a
// Point, not by its value, so that repeated nudges accumulate on the same
// underlying node center, port, or shape control across many calls.
type Point struct {
	X, Y float64
}

// NewPoint returns a new Point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Vector returns the point's coordinates as a free vector.
func (p *Point) Vector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Set overwrites the point's coordinates in place.
func (p *Point) Set(v Vector) {
	p.X, p.Y = v.X, v.Y
}

// Translate moves the point by delta in place.
func (p *Point) Translate(delta Vector) {
	p.X += delta.X
	p.Y += delta.Y
}

// Sub returns the vector from other to p (p - other).
func (p *Point) Sub(other *Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Clone returns a new, independent Point with the same coordinates. Used
// when a caller needs a snapshot that optimizer mutation won't affect.
func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}
