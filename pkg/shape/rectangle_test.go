package shape

import (
	"math"
	"testing"

	"github.com/dshills/layoutkit/pkg/geom"
	"pgregory.net/rapid"
)

func approxEqual(t *testing.T, got, want geom.Vector, msg string) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("%s: got (%v,%v), want (%v,%v)", msg, got.X, got.Y, want.X, want.Y)
	}
}

func TestRectangle_Boundary(t *testing.T) {
	center := geom.NewPoint(1, 1)
	r := NewRectangle(center, 2, 2, PreserveNone)

	cases := []struct {
		name string
		dir  geom.Vector
		off  float64
		want geom.Vector
	}{
		{"right", geom.Vector{X: 1, Y: 0}, 0, geom.Vector{X: 2, Y: 1}},
		{"right-scaled-dir", geom.Vector{X: 2, Y: 0}, 0, geom.Vector{X: 2, Y: 1}},
		{"up", geom.Vector{X: 0, Y: 1}, 0, geom.Vector{X: 1, Y: 2}},
		{"right-expanded", geom.Vector{X: 1, Y: 0}, 1, geom.Vector{X: 3, Y: 1}},
		{"left-contracted", geom.Vector{X: -1, Y: 0}, -0.5, geom.Vector{X: 0.5, Y: 1}},
	}
	for _, c := range cases {
		got := r.Boundary(c.dir, c.off)
		approxEqual(t, got, c.want, c.name)
	}
}

func TestRectangle_ConstrainPointOnBoundary_EqualMasses(t *testing.T) {
	center := geom.NewPoint(1, 1)
	r := NewRectangle(center, 2, 2, PreserveNone)
	point := geom.NewPoint(4, 1)

	batch := r.ConstrainPointOnBoundary(point, 1, 1, 0, 0)

	var pointDelta, centerDelta, controlDelta geom.Vector
	for _, g := range batch {
		switch g.Point {
		case point:
			pointDelta = g.Delta
		case center:
			centerDelta = g.Delta
		case r.Control():
			controlDelta = g.Delta
		}
	}
	approxEqual(t, pointDelta, geom.Vector{X: -1, Y: 0}, "point delta")
	approxEqual(t, centerDelta, geom.Vector{X: 1, Y: 0}, "center delta")
	approxEqual(t, controlDelta, geom.Vector{}, "control delta")
}

func TestRectangle_ConstrainPointOnBoundary_HeavyShapeAbsorbsNothing(t *testing.T) {
	center := geom.NewPoint(1, 1)
	r := NewRectangle(center, 2, 2, PreserveNone)
	point := geom.NewPoint(4, 1)

	batch := r.ConstrainPointOnBoundary(point, 1, 1e12, 0, 0)

	var pointDelta geom.Vector
	sawCenter := false
	for _, g := range batch {
		if g.Point == point {
			pointDelta = g.Delta
		}
		if g.Point == center {
			sawCenter = true
		}
	}
	approxEqual(t, pointDelta, geom.Vector{X: -2, Y: 0}, "point delta")
	if sawCenter {
		t.Errorf("expected no perceptible center gradient when shape mass dominates")
	}
}

func TestRectangle_ConstrainPointOnBoundary_ExpansionGrowsControlProportionally(t *testing.T) {
	center := geom.NewPoint(1, 1)
	r := NewRectangle(center, 2, 2, PreserveNone)
	point := geom.NewPoint(4, 1)

	batch := r.ConstrainPointOnBoundary(point, 1, 1, 0.25, 0)

	var pointDelta, centerDelta, controlDelta geom.Vector
	for _, g := range batch {
		switch g.Point {
		case point:
			pointDelta = g.Delta
		case center:
			centerDelta = g.Delta
		case r.Control():
			controlDelta = g.Delta
		}
	}
	approxEqual(t, pointDelta, geom.Vector{X: -1, Y: 0}, "point delta")
	approxEqual(t, centerDelta, geom.Vector{X: 0.75, Y: 0}, "center delta")
	approxEqual(t, controlDelta, geom.Vector{X: 0.25, Y: 0.25}, "control delta")
}

func TestRectangle_Contains(t *testing.T) {
	center := geom.NewPoint(0, 0)
	r := NewRectangle(center, 4, 2, PreserveNone)
	if !r.Contains(geom.Vector{X: 2, Y: 1}, 0) {
		t.Error("expected corner to be contained (inclusive boundary)")
	}
	if r.Contains(geom.Vector{X: 2.1, Y: 1}, 0) {
		t.Error("expected point just outside to not be contained")
	}
	if !r.Contains(geom.Vector{X: 2.1, Y: 1}, 1) {
		t.Error("expected point to be contained once offset expands the boundary")
	}
}

func TestRectangle_ConstrainShapeWithin_PullsChildInward(t *testing.T) {
	parent := NewRectangle(geom.NewPoint(0, 0), 20, 20, PreserveNone)
	childCenter := geom.NewPoint(9.5, 0)
	child := NewRectangle(childCenter, 2, 2, PreserveNone)

	batch := parent.ConstrainShapeWithin(child, 1, 1, 0, 0)
	if len(batch) == 0 {
		t.Fatal("expected a correction since the child's corner exceeds the parent's bound")
	}
	batch.Apply(1)

	if childCenter.X >= 9.5 {
		t.Errorf("expected child to move inward along x, got %v", childCenter.X)
	}
}

func TestRectangle_ConstrainShapeWithin_NoCorrectionWhenFullyInside(t *testing.T) {
	parent := NewRectangle(geom.NewPoint(0, 0), 20, 20, PreserveNone)
	child := NewRectangle(geom.NewPoint(1, 1), 2, 2, PreserveNone)

	batch := parent.ConstrainShapeWithin(child, 1, 1, 0, 0)
	if len(batch) != 0 {
		t.Errorf("expected no correction for a fully contained child, got %d gradients", len(batch))
	}
}

func TestProperty_CircleBoundaryLiesAtRadius(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cx := rapid.Float64Range(-100, 100).Draw(t, "cx")
		cy := rapid.Float64Range(-100, 100).Draw(t, "cy")
		radius := rapid.Float64Range(0.1, 50).Draw(t, "radius")
		dx := rapid.Float64Range(-10, 10).Draw(t, "dx")
		dy := rapid.Float64Range(-10, 10).Draw(t, "dy")
		dir := geom.Vector{X: dx, Y: dy}
		if dir.IsZero() {
			return
		}
		c := NewCircle(geom.NewPoint(cx, cy), radius, PreserveNone)
		b := c.Boundary(dir, 0)
		dist := b.Sub(geom.Vector{X: cx, Y: cy}).Length()
		if math.Abs(dist-radius) > 1e-6 {
			t.Fatalf("boundary distance from center = %v, want radius %v", dist, radius)
		}
	})
}

func TestProperty_RectangleContainsItsOwnCorners(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cx := rapid.Float64Range(-100, 100).Draw(t, "cx")
		cy := rapid.Float64Range(-100, 100).Draw(t, "cy")
		w := rapid.Float64Range(0.2, 50).Draw(t, "w")
		h := rapid.Float64Range(0.2, 50).Draw(t, "h")
		r := NewRectangle(geom.NewPoint(cx, cy), w, h, PreserveNone)
		b := r.Bounds()
		corners := []geom.Vector{
			{X: b.MinX, Y: b.MinY},
			{X: b.MaxX, Y: b.MinY},
			{X: b.MinX, Y: b.MaxY},
			{X: b.MaxX, Y: b.MaxY},
		}
		for _, p := range corners {
			if !r.Contains(p, 1e-9) {
				t.Fatalf("corner %v not contained in its own rectangle", p)
			}
		}
	})
}
