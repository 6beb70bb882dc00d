package optim

import (
	"fmt"

	"github.com/dshills/layoutkit/pkg/geom"
)

// lrFloor is the small positive floor a decaying lr is clamped to, so
// repeated decay never drives a learning rate to zero or negative.
const lrFloor = 1e-6

// FixedConfig configures [Fixed]: a constant learning rate with an optional
// per-update multiplicative decay.
type FixedConfig struct {
	LR    float64
	Decay float64
}

// DefaultFixedConfig returns the standard defaults: lr=1, decay=1 (no decay).
func DefaultFixedConfig() *FixedConfig {
	return &FixedConfig{LR: 1, Decay: 1}
}

// Validate reports a construction-time misconfiguration.
func (c *FixedConfig) Validate() error {
	if c.LR <= 0 {
		return fmt.Errorf("optim: FixedConfig.LR must be > 0, got %v", c.LR)
	}
	if c.Decay <= 0 || c.Decay > 1 {
		return fmt.Errorf("optim: FixedConfig.Decay must be in (0, 1], got %v", c.Decay)
	}
	return nil
}

// Fixed applies a constant learning rate, optionally decaying it by a
// constant factor on every Update, clamped at [lrFloor].
type Fixed struct {
	lr    float64
	decay float64
}

// NewFixed constructs a Fixed optimizer from config, or [DefaultFixedConfig]
// if config is nil. Panics if config fails Validate, mirroring the
// teacher's Get/Config.Validate pattern at the point of construction.
func NewFixed(config *FixedConfig) *Fixed {
	if config == nil {
		config = DefaultFixedConfig()
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &Fixed{lr: config.LR, decay: config.Decay}
}

func (f *Fixed) Step(batch geom.Batch) {
	batch.Apply(f.lr)
}

func (f *Fixed) Update() {
	f.lr *= f.decay
	if f.lr < lrFloor {
		f.lr = lrFloor
	}
}

// LR returns the optimizer's current learning rate.
func (f *Fixed) LR() float64 {
	return f.lr
}
