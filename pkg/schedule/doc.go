// Package schedule provides piecewise, interpolated time-varying values used
// by layout stages and optimizers.
//
// A scheduler is built from a sequence of contiguous [start, end) timestep
// ranges, each with its own interpolator. Looking a timestep up finds the
// range it falls in and evaluates that range's interpolator at the
// normalized position within the range; looking a timestep up outside every
// defined range returns a caller-supplied default.
//
// Ranges generalize a normalized-domain interpolation curve to arbitrary
// contiguous timestep ranges instead of a single [0,1] progress axis.
package schedule
