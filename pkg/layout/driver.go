package layout

import "github.com/dshills/layoutkit/pkg/graph"

// Callback observes a driver run at a given point. storage is the graph
// being laid out; step is the number of steps finished so far (0 for the
// on_start call). Returning false aborts the run: on_start returning false
// skips the run entirely, on_step returning false stops after the step
// that produced it and suppresses the on_end callback.
type Callback func(storage *graph.Storage, step int) bool

// Driver runs a fixed number of steps, each executing every stage in
// declaration order. Stages, iterations within a stage, and batches within
// an iteration all run strictly in order.
type Driver struct {
	Storage  *graph.Storage
	Steps    int
	Stages   []Stage
	OnStart  Callback
	OnStep   Callback
	OnEnd    Callback
	finished int
}

// NewDriver constructs a Driver over storage running the given stages for
// the given number of steps. Callbacks are optional; a nil callback is
// treated as always returning true.
func NewDriver(storage *graph.Storage, steps int, stages []Stage) *Driver {
	return &Driver{Storage: storage, Steps: steps, Stages: stages}
}

func callOrTrue(cb Callback, s *graph.Storage, step int) bool {
	if cb == nil {
		return true
	}
	return cb(s, step)
}

// Start runs the driver to completion (or until a callback cancels it).
// It calls OnStart(storage, 0) first; if that returns false, the run aborts
// before any step runs. Otherwise it calls Step repeatedly until every step
// has run, stopping early (without calling OnEnd) if OnStep ever returns
// false. After a full run, it calls OnEnd.
func (d *Driver) Start() {
	if !callOrTrue(d.OnStart, d.Storage, 0) {
		return
	}
	for d.finished < d.Steps {
		if !d.Step() {
			return
		}
	}
	callOrTrue(d.OnEnd, d.Storage, d.finished)
}

// Step runs every stage once, in order, each for its configured number of
// inner iterations, then increments the finished-step counter and reports
// OnStep's result.
func (d *Driver) Step() bool {
	for _, st := range d.Stages {
		st.run(d.Storage)
	}
	d.finished++
	return callOrTrue(d.OnStep, d.Storage, d.finished)
}

// Finished returns the number of steps completed so far.
func (d *Driver) Finished() int {
	return d.finished
}
