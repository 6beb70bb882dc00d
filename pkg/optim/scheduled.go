package optim

import (
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/schedule"
)

// Scheduled applies a learning rate produced by a [schedule.NumberScheduler]
// keyed by an internal timestep that advances by one on every Update.
type Scheduled struct {
	sched *schedule.NumberScheduler
	t     int
}

// NewScheduled constructs a Scheduled optimizer reading lr from sched,
// starting at timestep 0.
func NewScheduled(sched *schedule.NumberScheduler) *Scheduled {
	return &Scheduled{sched: sched}
}

func (s *Scheduled) Step(batch geom.Batch) {
	batch.Apply(s.sched.At(s.t))
}

func (s *Scheduled) Update() {
	s.t++
}

// LR returns the learning rate at the current timestep.
func (s *Scheduled) LR() float64 {
	return s.sched.At(s.t)
}

// Timestep returns the optimizer's current timestep.
func (s *Scheduled) Timestep() int {
	return s.t
}
