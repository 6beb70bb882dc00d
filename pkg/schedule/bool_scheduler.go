package schedule

import "fmt"

type boolRange struct {
	start, end int
	value      bool
}

// BoolScheduler is the boolean analogue of [NumberScheduler]: a piecewise
// constant value keyed by an integer timestep, with a default for lookups
// outside every appended range.
type BoolScheduler struct {
	def    bool
	ranges []boolRange
}

// NewBoolScheduler creates a scheduler that returns def for any timestep not
// covered by an appended range.
func NewBoolScheduler(def bool) *BoolScheduler {
	return &BoolScheduler{def: def}
}

// To appends the range [previous-end, end) with the given constant value.
// Panics if end is not strictly greater than the previous range's end, the
// same construction-time discipline as [NumberScheduler.To].
func (s *BoolScheduler) To(end int, value bool) *BoolScheduler {
	start := 0
	if n := len(s.ranges); n > 0 {
		start = s.ranges[n-1].end
	}
	if end <= start {
		panic(fmt.Sprintf("schedule: BoolScheduler.To: end %d must be > previous end %d", end, start))
	}
	s.ranges = append(s.ranges, boolRange{start: start, end: end, value: value})
	return s
}

// At returns the scheduled value for timestep t, or the scheduler's default
// if t falls outside every appended range.
func (s *BoolScheduler) At(t int) bool {
	for _, r := range s.ranges {
		if t >= r.start && t < r.end {
			return r.value
		}
	}
	return s.def
}

// Default returns the scheduler's out-of-range default value.
func (s *BoolScheduler) Default() bool {
	return s.def
}
