package constraint

import (
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
)

// splitAlong produces opposite-signed gradients on p and q along dir
// (assumed already the direction correcting should move q, with p moving
// the opposite way), split in inverse proportion to massP and massQ.
// Gradients below geom.ZeroThreshold are omitted.
func splitAlong(p, q *geom.Point, dir geom.Vector, delta, massP, massQ float64) geom.Batch {
	total := massP + massQ
	if total <= 0 || delta == 0 {
		return nil
	}
	wP := massQ / total
	wQ := massP / total
	var batch geom.Batch
	qDelta := dir.Scale(delta * wQ)
	pDelta := dir.Scale(-delta * wP)
	if qDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(q, qDelta))
	}
	if pDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(p, pDelta))
	}
	return batch
}

// ConstrainDistance compares the distance between p and q (or its
// projection onto axis, if non-nil) against d under op, and returns
// gradients that push p and q apart or together to satisfy it.
func ConstrainDistance(p, q *geom.Point, op Op, d float64, axis *geom.Vector, massP, massQ float64) geom.Batch {
	pq := q.Sub(p)
	var current float64
	var dir geom.Vector
	if axis != nil {
		axisNorm := axis.Normalize()
		proj := pq.Dot(axisNorm)
		current = math.Abs(proj)
		sign := 1.0
		if proj < 0 {
			sign = -1
		}
		dir = axisNorm.Scale(sign)
	} else {
		current = pq.Length()
		dir = pq.Normalize()
	}
	delta := op.delta(current, d)
	if delta == 0 {
		return nil
	}
	return splitAlong(p, q, dir, delta, massP, massQ)
}

// ConstrainOffset compares the signed projection of (q-p) onto direction
// against o under op; otherwise identical to ConstrainDistance.
func ConstrainOffset(p, q *geom.Point, op Op, o float64, direction geom.Vector, massP, massQ float64) geom.Batch {
	dir := direction.Normalize()
	pq := q.Sub(p)
	current := pq.Dot(dir)
	delta := op.delta(current, o)
	if delta == 0 {
		return nil
	}
	return splitAlong(p, q, dir, delta, massP, massQ)
}

// normalizeAngleDeg wraps a degree value into [0,360).
func normalizeAngleDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// signedAngleDiff returns target-current wrapped into (-180,180].
func signedAngleDiff(current, target float64) float64 {
	diff := math.Mod(target-current, 360)
	if diff <= -180 {
		diff += 360
	} else if diff > 180 {
		diff -= 360
	}
	return diff
}

// NudgeAngle is the force variant: for each candidate in angles (degrees,
// clockwise from +x, since y points down on screen), the one closest to
// the current pq angle is chosen, and a tangential nudge proportional to
// strength*signedDiff is emitted on p and q, split by inverse masses with
// opposite signs.
func NudgeAngle(p, q *geom.Point, angles []float64, strength, massP, massQ float64) geom.Batch {
	if len(angles) == 0 {
		return nil
	}
	pq := q.Sub(p)
	if pq.IsZero() {
		return nil
	}
	current := normalizeAngleDeg(math.Atan2(pq.Y, pq.X) * 180 / math.Pi)

	best := angles[0]
	bestAbs := math.Abs(signedAngleDiff(current, normalizeAngleDeg(angles[0])))
	for _, a := range angles[1:] {
		d := math.Abs(signedAngleDiff(current, normalizeAngleDeg(a)))
		if d < bestAbs {
			bestAbs = d
			best = a
		}
	}
	signedDiff := signedAngleDiff(current, normalizeAngleDeg(best))

	tangent := pq.Normalize().Perp()
	magnitude := strength * signedDiff
	total := massP + massQ
	if total <= 0 {
		return nil
	}
	wP := massQ / total
	wQ := massP / total
	var batch geom.Batch
	qDelta := tangent.Scale(magnitude * wQ)
	pDelta := tangent.Scale(-magnitude * wP)
	if qDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(q, qDelta))
	}
	if pDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(p, pDelta))
	}
	return batch
}

// ConstrainAngle is NudgeAngle's hard-constraint spelling: same mechanics,
// offered under the name used for constraint (rather than force) call
// sites.
func ConstrainAngle(p, q *geom.Point, angles []float64, strength, massP, massQ float64) geom.Batch {
	return NudgeAngle(p, q, angles, strength, massP, massQ)
}

// NudgePair moves p by magnitudes[0] along the unit vector from q to p,
// and q by magnitudes[1] along the opposite direction. A zero magnitude
// cancels that side's movement, e.g. to hold a fixed point in place.
func NudgePair(p, q *geom.Point, magnitudes [2]float64) geom.Batch {
	dir := p.Sub(q).Normalize()
	var batch geom.Batch
	if magnitudes[0] != 0 {
		d := dir.Scale(magnitudes[0])
		if d.Length() >= geom.ZeroThreshold {
			batch = append(batch, geom.NewGradient(p, d))
		}
	}
	if magnitudes[1] != 0 {
		d := dir.Neg().Scale(magnitudes[1])
		if d.Length() >= geom.ZeroThreshold {
			batch = append(batch, geom.NewGradient(q, d))
		}
	}
	return batch
}

// NudgePoint applies direction (need not be normalized) scaled to
// strength, directly to p.
func NudgePoint(p *geom.Point, strength float64, direction geom.Vector) geom.Batch {
	d := direction.Normalize().Scale(strength)
	if d.Length() < geom.ZeroThreshold {
		return nil
	}
	return geom.Batch{geom.NewGradient(p, d)}
}

// forcePairwisePowerFloor is the lower bound on the base of the power law
// in ForcePairwisePower, avoiding a singularity when the actual distance
// sits exactly at control.
const forcePairwisePowerFloor = 0.1

// ForcePairwisePower emits a gradient of magnitude scalar*base^power on
// each of p and q, where base is |distance(p,q) - control| floored at
// forcePairwisePowerFloor; the force points p and q apart when distance
// exceeds control and together when it falls short.
func ForcePairwisePower(p, q *geom.Point, power, control, scalarP, scalarQ float64) geom.Batch {
	pq := p.Sub(q)
	if pq.IsZero() {
		return nil
	}
	dist := pq.Length()
	dir := pq.Normalize()
	diff := dist - control
	sign := 1.0
	if diff < 0 {
		sign = -1
	}
	base := math.Abs(diff)
	if base < forcePairwisePowerFloor {
		base = forcePairwisePowerFloor
	}
	magnitude := math.Pow(base, power) * sign

	var batch geom.Batch
	pDelta := dir.Scale(magnitude * scalarP)
	qDelta := dir.Neg().Scale(magnitude * scalarQ)
	if pDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(p, pDelta))
	}
	if qDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, geom.NewGradient(q, qDelta))
	}
	return batch
}
