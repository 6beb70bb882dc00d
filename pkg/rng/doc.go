// Package rng provides deterministic pseudo-random number generation for the
// layout engine.
//
// # Overview
//
// Graph materialization needs randomness in exactly two places: a node's
// initial center when a schema does not specify one, and the tiny offset
// given to an auto-allocated port. Both must be deterministic given the same
// node/edge id, independent of map iteration order, so that two graphs built
// from the same schema land on the same initial positions. RNG derives a
// sub-seed using SHA-256:
//
//	seed_id = H(masterSeed, id, salt)
//
// where id is the node or edge id and salt distinguishes unrelated uses of
// the same id (e.g. the source vs. target port of one edge). This ensures:
//  1. Same inputs always produce the same sequence (determinism).
//  2. Different ids get independent sequences (isolation).
//  3. A different salt reshuffles the sequence even for the same id.
//
// # Usage
//
//	centerRNG := rng.ForID(masterSeed, "node-42", "center")
//	x, y := centerRNG.Float64(), centerRNG.Float64()
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG.
package rng
