package optim

import (
	"testing"

	"github.com/dshills/layoutkit/pkg/geom"
	"pgregory.net/rapid"
)

func TestEnergyAdaptive_GrowsAfterWaitImprovingUpdates(t *testing.T) {
	e := NewEnergyAdaptive(&EnergyAdaptiveConfig{
		LRInitial: 0.5, LRMax: 2, LRMin: 0.01, Wait: 2, Decay: 0.9, Growth: 1.5, Smoothing: 0.5,
	})
	p := geom.NewPoint(0, 0)
	mag := 10.0
	for i := 0; i < 2; i++ {
		e.Step(geom.Batch{geom.NewGradient(p, geom.Vector{X: mag, Y: 0})})
		e.Update()
		mag /= 2 // strictly decreasing energy each update
	}
	if e.LR() <= 0.5 {
		t.Errorf("expected LR to grow after %d consecutive improving updates, got %v", 2, e.LR())
	}
}

func TestEnergyAdaptive_ShrinksOnWorseningEnergy(t *testing.T) {
	e := NewEnergyAdaptive(&EnergyAdaptiveConfig{
		LRInitial: 0.5, LRMax: 2, LRMin: 0.01, Wait: 5, Decay: 0.5, Growth: 1.1, Smoothing: 0.5,
	})
	p := geom.NewPoint(0, 0)
	e.Step(geom.Batch{geom.NewGradient(p, geom.Vector{X: 1, Y: 0})})
	e.Update()
	e.Step(geom.Batch{geom.NewGradient(p, geom.Vector{X: 100, Y: 0})})
	e.Update()
	if e.LR() >= 0.5 {
		t.Errorf("expected LR to shrink after a worsening update, got %v", e.LR())
	}
}

func TestProperty_EnergyAdaptiveLRStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lrMin := rapid.Float64Range(0.001, 0.5).Draw(t, "lrMin")
		lrMax := rapid.Float64Range(lrMin, lrMin+2).Draw(t, "lrMax")
		e := NewEnergyAdaptive(&EnergyAdaptiveConfig{
			LRInitial: lrMin, LRMax: lrMax, LRMin: lrMin,
			Wait: rapid.IntRange(0, 4).Draw(t, "wait"),
			Decay: rapid.Float64Range(0.1, 1).Draw(t, "decay"),
			Growth: rapid.Float64Range(1, 2).Draw(t, "growth"),
			Smoothing: rapid.Float64Range(0, 1).Draw(t, "smoothing"),
		})
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			mag := rapid.Float64Range(0, 50).Draw(t, "mag")
			p := geom.NewPoint(0, 0)
			e.Step(geom.Batch{geom.NewGradient(p, geom.Vector{X: mag, Y: 0})})
			e.Update()
			if e.LR() < lrMin-1e-9 || e.LR() > lrMax+1e-9 {
				t.Fatalf("LR %v escaped [%v, %v]", e.LR(), lrMin, lrMax)
			}
		}
	})
}
