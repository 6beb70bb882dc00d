// Package optim implements the optimizers that apply gradient batches to
// points with a learning rate: point += lr * delta.
//
// Five variants are provided: [Fixed] (constant lr with optional decay),
// [Scheduled] (lr driven by a [schedule.NumberScheduler]),
// [EnergyAdaptive] (lr grows or shrinks based on a smoothed gradient-energy
// trend), [RMSProp] (per-point, per-component running average of squared
// gradients), and [TrustRegion] (per-point lr that grows or shrinks based on
// how the latest gradient magnitude compares to a running average). Every
// variant implements [Optimizer]; [New] constructs every variant except
// Scheduled by name, and [List] names them.
package optim
