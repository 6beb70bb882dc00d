// Package force implements the higher-level force generators a staged
// layout stage runs: spring and spring-electrical attraction/repulsion,
// compactness, centering, and children-containment. Each generator is a
// [Generator]: given a storage, it returns a fresh, restartable, pull-based
// sequence of gradient batches that a [pkg/layout.Driver]'s stage feeds to
// its optimizer one batch at a time, so the whole graph's gradients never
// need to be materialized at once.
package force
