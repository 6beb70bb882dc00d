package optim

import (
	"fmt"
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
)

// EnergyAdaptiveConfig configures [EnergyAdaptive].
type EnergyAdaptiveConfig struct {
	LRInitial float64
	LRMax     float64
	LRMin     float64
	// Wait is the number of consecutive improving updates required before
	// lr grows.
	Wait      int
	Decay     float64
	Growth    float64
	Smoothing float64
}

// DefaultEnergyAdaptiveConfig returns the standard defaults.
func DefaultEnergyAdaptiveConfig() *EnergyAdaptiveConfig {
	return &EnergyAdaptiveConfig{
		LRInitial: 1, LRMax: 1, LRMin: 0.01,
		Wait: 5, Decay: 0.9, Growth: 1.1, Smoothing: 0.1,
	}
}

// Validate reports a construction-time misconfiguration: decay > 1,
// growth < 1, or wait < 0 are rejected.
func (c *EnergyAdaptiveConfig) Validate() error {
	if c.Decay > 1 {
		return fmt.Errorf("optim: EnergyAdaptiveConfig.Decay must be <= 1, got %v", c.Decay)
	}
	if c.Growth < 1 {
		return fmt.Errorf("optim: EnergyAdaptiveConfig.Growth must be >= 1, got %v", c.Growth)
	}
	if c.Wait < 0 {
		return fmt.Errorf("optim: EnergyAdaptiveConfig.Wait must be >= 0, got %v", c.Wait)
	}
	if c.LRMin <= 0 || c.LRMax < c.LRMin {
		return fmt.Errorf("optim: EnergyAdaptiveConfig.LRMin/LRMax must satisfy 0 < LRMin <= LRMax, got %v/%v", c.LRMin, c.LRMax)
	}
	if c.Smoothing < 0 || c.Smoothing > 1 {
		return fmt.Errorf("optim: EnergyAdaptiveConfig.Smoothing must be in [0, 1], got %v", c.Smoothing)
	}
	return nil
}

// EnergyAdaptive grows its learning rate after a run of updates whose mean
// gradient energy keeps improving, and shrinks it the moment energy gets
// worse.
type EnergyAdaptive struct {
	cfg EnergyAdaptiveConfig

	lr       float64
	energy   float64 // accumulated since the last Update
	prev     float64 // exponentially smoothed previous energy
	improved int      // consecutive strictly-improving updates
}

// NewEnergyAdaptive constructs an EnergyAdaptive optimizer from config, or
// [DefaultEnergyAdaptiveConfig] if config is nil. Panics if config fails
// Validate.
func NewEnergyAdaptive(config *EnergyAdaptiveConfig) *EnergyAdaptive {
	if config == nil {
		config = DefaultEnergyAdaptiveConfig()
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &EnergyAdaptive{
		cfg:  *config,
		lr:   config.LRInitial,
		prev: math.Inf(1),
	}
}

func (e *EnergyAdaptive) Step(batch geom.Batch) {
	if len(batch) > 0 {
		sum := 0.0
		for _, g := range batch {
			sum += g.Delta.Length()
		}
		e.energy += sum / float64(len(batch))
	}
	batch.Apply(e.lr)
}

func (e *EnergyAdaptive) Update() {
	current := e.energy
	switch {
	case current < e.prev:
		e.improved++
		if e.improved >= e.cfg.Wait {
			e.lr = math.Min(e.lr*e.cfg.Growth, e.cfg.LRMax)
			e.improved = 0
		}
	case current > e.prev:
		e.lr = math.Max(e.lr*e.cfg.Decay, e.cfg.LRMin)
		e.improved = 0
	}
	if math.IsInf(e.prev, 1) {
		e.prev = current
	} else {
		e.prev = e.prev*(1-e.cfg.Smoothing) + current*e.cfg.Smoothing
	}
	e.energy = 0
}

// LR returns the optimizer's current learning rate.
func (e *EnergyAdaptive) LR() float64 {
	return e.lr
}
