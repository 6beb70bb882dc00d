package optim

import (
	"fmt"
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
)

// rmsEpsilon is the ~1e-3 floor added to the running average's square root
// before dividing, so RMSProp never divides by (near) zero for a point that
// hasn't moved yet.
const rmsEpsilon = 1e-3

// RMSPropConfig configures [RMSProp].
type RMSPropConfig struct {
	LR        float64
	Smoothing float64
}

// DefaultRMSPropConfig returns the standard defaults: lr=1, smoothing=0.99.
func DefaultRMSPropConfig() *RMSPropConfig {
	return &RMSPropConfig{LR: 1, Smoothing: 0.99}
}

// Validate reports a construction-time misconfiguration.
func (c *RMSPropConfig) Validate() error {
	if c.LR <= 0 {
		return fmt.Errorf("optim: RMSPropConfig.LR must be > 0, got %v", c.LR)
	}
	if c.Smoothing < 0 || c.Smoothing >= 1 {
		return fmt.Errorf("optim: RMSPropConfig.Smoothing must be in [0, 1), got %v", c.Smoothing)
	}
	return nil
}

// RMSProp keeps a per-point, per-component running average of squared
// gradient components and scales each step's delta by
// lr / (sqrt(avg) + epsilon), so points that have moved a lot recently take
// smaller steps than ones that haven't.
type RMSProp struct {
	cfg RMSPropConfig
	avg map[*geom.Point]geom.Vector
}

// NewRMSProp constructs an RMSProp optimizer from config, or
// [DefaultRMSPropConfig] if config is nil. Panics if config fails Validate.
func NewRMSProp(config *RMSPropConfig) *RMSProp {
	if config == nil {
		config = DefaultRMSPropConfig()
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &RMSProp{cfg: *config, avg: make(map[*geom.Point]geom.Vector)}
}

func (r *RMSProp) Step(batch geom.Batch) {
	for _, g := range batch {
		prev := r.avg[g.Point]
		sq := geom.Vector{X: g.Delta.X * g.Delta.X, Y: g.Delta.Y * g.Delta.Y}
		next := geom.Vector{
			X: prev.X*r.cfg.Smoothing + sq.X*(1-r.cfg.Smoothing),
			Y: prev.Y*r.cfg.Smoothing + sq.Y*(1-r.cfg.Smoothing),
		}
		r.avg[g.Point] = next
		scaled := geom.Vector{
			X: r.cfg.LR * g.Delta.X / (math.Sqrt(next.X) + rmsEpsilon),
			Y: r.cfg.LR * g.Delta.Y / (math.Sqrt(next.Y) + rmsEpsilon),
		}
		g.Point.Translate(scaled)
	}
}

func (r *RMSProp) Update() {}
