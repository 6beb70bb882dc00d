package optim

import (
	"fmt"
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
)

// TrustRegionConfig configures [TrustRegion].
type TrustRegionConfig struct {
	LR        float64
	Adaption  float64
	Smoothing float64
	LRMax     float64
	LRMin     float64
}

// DefaultTrustRegionConfig returns the standard defaults.
func DefaultTrustRegionConfig() *TrustRegionConfig {
	return &TrustRegionConfig{LR: 0.6, Adaption: 0.1, Smoothing: 0.5, LRMax: 1, LRMin: 1e-5}
}

// Validate reports a construction-time misconfiguration.
func (c *TrustRegionConfig) Validate() error {
	if c.Adaption <= 0 || c.Adaption >= 1 {
		return fmt.Errorf("optim: TrustRegionConfig.Adaption must be in (0, 1), got %v", c.Adaption)
	}
	if c.Smoothing < 0 || c.Smoothing > 1 {
		return fmt.Errorf("optim: TrustRegionConfig.Smoothing must be in [0, 1], got %v", c.Smoothing)
	}
	if c.LRMin <= 0 || c.LRMax < c.LRMin {
		return fmt.Errorf("optim: TrustRegionConfig.LRMin/LRMax must satisfy 0 < LRMin <= LRMax, got %v/%v", c.LRMin, c.LRMax)
	}
	if c.LR < c.LRMin || c.LR > c.LRMax {
		return fmt.Errorf("optim: TrustRegionConfig.LR must be within [LRMin, LRMax], got %v", c.LR)
	}
	return nil
}

type trustRegionState struct {
	lr     float64
	avgMag float64
}

// TrustRegion keeps a per-point lr and a per-point running average gradient
// magnitude. Whenever a point's latest gradient exceeds half its running
// average magnitude, its lr grows; otherwise it shrinks. Each point's lr is
// independent, so parts of the graph that are still moving a lot keep
// taking large steps while settled parts slow down.
type TrustRegion struct {
	cfg   TrustRegionConfig
	state map[*geom.Point]*trustRegionState
}

// NewTrustRegion constructs a TrustRegion optimizer from config, or
// [DefaultTrustRegionConfig] if config is nil. Panics if config fails
// Validate.
func NewTrustRegion(config *TrustRegionConfig) *TrustRegion {
	if config == nil {
		config = DefaultTrustRegionConfig()
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &TrustRegion{cfg: *config, state: make(map[*geom.Point]*trustRegionState)}
}

func (t *TrustRegion) Step(batch geom.Batch) {
	for _, g := range batch {
		st, ok := t.state[g.Point]
		if !ok {
			st = &trustRegionState{lr: t.cfg.LR, avgMag: g.Delta.Length()}
			t.state[g.Point] = st
		}
		mag := g.Delta.Length()
		if mag > st.avgMag/2 {
			st.lr = math.Min(st.lr*(1+t.cfg.Adaption), t.cfg.LRMax)
		} else {
			st.lr = math.Max(st.lr*(1-t.cfg.Adaption), t.cfg.LRMin)
		}
		st.avgMag = st.avgMag*t.cfg.Smoothing + mag*(1-t.cfg.Smoothing)
		g.Point.Translate(g.Delta.Scale(st.lr))
	}
}

func (t *TrustRegion) Update() {}

// LRFor returns the current per-point learning rate for p, or the config's
// initial lr if p has not received a gradient yet.
func (t *TrustRegion) LRFor(p *geom.Point) float64 {
	if st, ok := t.state[p]; ok {
		return st.lr
	}
	return t.cfg.LR
}
