package shape

import "github.com/dshills/layoutkit/pkg/geom"

// preserveStiffness scales the restoring gradient PreserveGradient emits; it
// is a fixed fraction of the deviation from the shape's initial control
// vector, applied once per call the same way a spring force is.
const preserveStiffness = 0.1

// splitBoundaryGradients implements the point/shape mass split shared by
// every Shape.ConstrainPointOnBoundary: the normal delta between point and
// boundaryPoint is divided between point (weighted by shapeMass) and the
// shape (weighted by pointMass); the shape's share is further divided
// between moving center (weight 1-expansion) and growing control (weight
// expansion), with growFn translating the control's share of the normal
// delta into a control-vector delta along the shape's own growth axis.
func splitBoundaryGradients(
	center, control, point *geom.Point,
	boundaryPoint geom.Vector,
	pointMass, shapeMass, expansion float64,
	growFn func(dir, share geom.Vector) geom.Vector,
) geom.Batch {
	total := pointMass + shapeMass
	if total <= 0 {
		return nil
	}
	dir := point.Sub(center)
	pointVec := point.Vector()
	delta := boundaryPoint.Sub(pointVec)

	wPoint := shapeMass / total
	wShape := pointMass / total

	pointGrad := delta.Scale(wPoint)
	shapeShare := pointVec.Sub(boundaryPoint).Scale(wShape)
	centerGrad := shapeShare.Scale(1 - expansion)
	controlShare := shapeShare.Scale(expansion)
	controlGrad := growFn(dir, controlShare)

	var batch geom.Batch
	if pointGrad.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(point, pointGrad))
	}
	if centerGrad.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(center, centerGrad))
	}
	if controlGrad.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(control, controlGrad))
	}
	return batch
}

// constrainShapeWithin probes sub's support point along each of self's four
// cardinal normals, runs self's point-on-boundary constraint against that
// support point, and redirects whatever share of the result landed on the
// probe point onto sub's center instead, since moving the support point and
// moving sub's center by the same delta have the same first-order effect.
func constrainShapeWithin(self, sub Shape, subMass, selfMass, expansion, offset float64) geom.Batch {
	var batch geom.Batch
	normals := [4]geom.Vector{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	for _, n := range normals {
		support := sub.Support(n)
		if self.Contains(support, offset) {
			continue
		}
		probe := geom.NewPoint(support.X, support.Y)
		grads := self.ConstrainPointOnBoundary(probe, subMass, selfMass, expansion, offset)
		for _, g := range grads {
			if g.Point == probe {
				batch = append(batch, geom.NewGradient(sub.Center(), g.Delta))
				continue
			}
			batch = append(batch, g)
		}
	}
	return batch
}

// preserveGradient computes the restoring gradient on control given the
// shape's initial control vector and its Preserve policy.
func preserveGradient(control *geom.Point, initial geom.Vector, policy Preserve) geom.Batch {
	current := control.Vector()
	var delta geom.Vector
	switch policy {
	case PreserveSize:
		dir := current.Normalize()
		delta = dir.Scale((initial.Length() - current.Length()) * preserveStiffness)
	case PreserveRatio:
		dir := initial.Normalize()
		parallel := dir.Scale(current.Dot(dir))
		perp := current.Sub(parallel)
		delta = perp.Scale(-preserveStiffness)
	default:
		return nil
	}
	if delta.Length() < geom.ZeroThreshold {
		return nil
	}
	return geom.Batch{geom.NewGradient(control, delta)}
}
