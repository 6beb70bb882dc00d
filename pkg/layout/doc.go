// Package layout implements the staged layout driver: a fixed number of
// steps, each running an ordered list of stages in turn. Each [Stage] pairs
// a [force.Generator] with an [optim.Optimizer]; the driver pulls gradient
// batches from the generator one at a time and steps the optimizer with
// each, updating the optimizer once per inner iteration.
//
// Scheduling is single-threaded and cooperative: there is no internal
// parallelism and no I/O. [Driver.Start] and [Driver.Step] are the only
// entry points; on_start/on_step/on_end callbacks let a caller observe or
// cancel the run between steps.
package layout
