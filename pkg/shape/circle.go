package shape

import "github.com/dshills/layoutkit/pkg/geom"

// Circle is a convex shape whose control vector holds its radius in X; Y is
// always zero.
type Circle struct {
	center   *geom.Point
	control  *geom.Point
	initial  geom.Vector
	preserve Preserve
}

// NewCircle creates a Circle anchored at center with the given radius.
func NewCircle(center *geom.Point, radius float64, preserve Preserve) *Circle {
	if radius <= 0 {
		panic("shape: NewCircle: radius must be positive")
	}
	control := geom.NewPoint(radius, 0)
	return &Circle{
		center:   center,
		control:  control,
		initial:  control.Vector(),
		preserve: preserve,
	}
}

func (c *Circle) Kind() Kind           { return KindCircle }
func (c *Circle) Center() *geom.Point  { return c.center }
func (c *Circle) Control() *geom.Point { return c.control }
func (c *Circle) Preserve() Preserve   { return c.preserve }

func (c *Circle) radius() float64 {
	return c.control.X
}

func (c *Circle) Bounds() Rect {
	r := c.radius()
	return Rect{
		MinX: c.center.X - r,
		MinY: c.center.Y - r,
		MaxX: c.center.X + r,
		MaxY: c.center.Y + r,
	}
}

func (c *Circle) Boundary(direction geom.Vector, offset float64) geom.Vector {
	dir := direction.Normalize()
	if dir.IsZero() {
		dir = geom.Vector{X: 1, Y: 0}
	}
	return c.center.Vector().AddScaled(dir, c.radius()+offset)
}

// Support coincides with Boundary at offset zero: a circle's extreme
// vertex in any direction lies exactly on its boundary.
func (c *Circle) Support(direction geom.Vector) geom.Vector {
	return c.Boundary(direction, 0)
}

func (c *Circle) Contains(p geom.Vector, offset float64) bool {
	d := p.Sub(c.center.Vector())
	return d.Length() <= c.radius()+offset
}

func (c *Circle) ConstrainPointOnBoundary(point *geom.Point, pointMass, shapeMass, expansion, offset float64) geom.Batch {
	dir := point.Sub(c.center)
	boundaryPoint := c.Boundary(dir, offset)
	grow := func(dir, share geom.Vector) geom.Vector {
		unit := dir.Normalize()
		if unit.IsZero() {
			return geom.Vector{}
		}
		scalar := share.Dot(unit)
		return geom.Vector{X: scalar, Y: 0}
	}
	return splitBoundaryGradients(c.center, c.control, point, boundaryPoint, pointMass, shapeMass, expansion, grow)
}

func (c *Circle) ConstrainShapeWithin(sub Shape, subMass, selfMass, expansion, offset float64) geom.Batch {
	return constrainShapeWithin(c, sub, subMass, selfMass, expansion, offset)
}

func (c *Circle) PreserveGradient() geom.Batch {
	return preserveGradient(c.control, c.initial, c.preserve)
}

func (c *Circle) ToSchema() Schema {
	return Schema{
		Kind:     KindCircle,
		Radius:   c.radius(),
		Preserve: c.preserve,
	}
}
