package shape

import (
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
)

// Rectangle is an axis-aligned convex shape whose control vector holds its
// half-width (X) and half-height (Y).
type Rectangle struct {
	center   *geom.Point
	control  *geom.Point
	initial  geom.Vector
	preserve Preserve
}

// NewRectangle creates a Rectangle anchored at center with the given width
// and height. center is not owned by the shape; width and height must be
// positive.
func NewRectangle(center *geom.Point, width, height float64, preserve Preserve) *Rectangle {
	if width <= 0 || height <= 0 {
		panic("shape: NewRectangle: width and height must be positive")
	}
	control := geom.NewPoint(width/2, height/2)
	return &Rectangle{
		center:   center,
		control:  control,
		initial:  control.Vector(),
		preserve: preserve,
	}
}

func (r *Rectangle) Kind() Kind           { return KindRectangle }
func (r *Rectangle) Center() *geom.Point  { return r.center }
func (r *Rectangle) Control() *geom.Point { return r.control }
func (r *Rectangle) Preserve() Preserve   { return r.preserve }

func (r *Rectangle) Bounds() Rect {
	hw, hh := r.control.X, r.control.Y
	return Rect{
		MinX: r.center.X - hw,
		MinY: r.center.Y - hh,
		MaxX: r.center.X + hw,
		MaxY: r.center.Y + hh,
	}
}

func (r *Rectangle) Boundary(direction geom.Vector, offset float64) geom.Vector {
	dir := direction
	if dir.IsZero() {
		dir = geom.Vector{X: 1, Y: 0}
	}
	hw := r.control.X + offset
	hh := r.control.Y + offset
	tX := math.Inf(1)
	if dir.X != 0 {
		tX = hw / math.Abs(dir.X)
	}
	tY := math.Inf(1)
	if dir.Y != 0 {
		tY = hh / math.Abs(dir.Y)
	}
	t := math.Min(tX, tY)
	return r.center.Vector().AddScaled(dir, t)
}

// Support returns the corner in the quadrant direction points into; ties
// (a zero component) resolve toward the positive axis.
func (r *Rectangle) Support(direction geom.Vector) geom.Vector {
	hw, hh := r.control.X, r.control.Y
	sx, sy := hw, hh
	if direction.X < 0 {
		sx = -hw
	}
	if direction.Y < 0 {
		sy = -hh
	}
	return r.center.Vector().Add(geom.Vector{X: sx, Y: sy})
}

func (r *Rectangle) Contains(p geom.Vector, offset float64) bool {
	hw := r.control.X + offset
	hh := r.control.Y + offset
	dx := math.Abs(p.X - r.center.X)
	dy := math.Abs(p.Y - r.center.Y)
	return dx <= hw && dy <= hh
}

func (r *Rectangle) ConstrainPointOnBoundary(point *geom.Point, pointMass, shapeMass, expansion, offset float64) geom.Batch {
	dir := point.Sub(r.center)
	boundaryPoint := r.Boundary(dir, offset)
	grow := func(dir, share geom.Vector) geom.Vector {
		axis := 0
		if math.Abs(dir.Y) > math.Abs(dir.X) {
			axis = 1
		}
		var shareOnAxis, controlOnAxis float64
		if axis == 0 {
			shareOnAxis, controlOnAxis = share.X, r.control.X
		} else {
			shareOnAxis, controlOnAxis = share.Y, r.control.Y
		}
		if controlOnAxis == 0 {
			return geom.Vector{}
		}
		scale := shareOnAxis / controlOnAxis
		return r.control.Vector().Scale(scale)
	}
	return splitBoundaryGradients(r.center, r.control, point, boundaryPoint, pointMass, shapeMass, expansion, grow)
}

func (r *Rectangle) ConstrainShapeWithin(sub Shape, subMass, selfMass, expansion, offset float64) geom.Batch {
	return constrainShapeWithin(r, sub, subMass, selfMass, expansion, offset)
}

func (r *Rectangle) PreserveGradient() geom.Batch {
	return preserveGradient(r.control, r.initial, r.preserve)
}

func (r *Rectangle) ToSchema() Schema {
	return Schema{
		Kind:     KindRectangle,
		Width:    r.control.X * 2,
		Height:   r.control.Y * 2,
		Preserve: r.preserve,
	}
}
