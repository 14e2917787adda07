package rangealloc

import (
	"fmt"

	"github.com/gfx-rs/gfx-sub004/memutils"
)

// Range is a half-open interval [Start, End) of byte offsets or descriptor slots
type Range[T memutils.Number] struct {
	// Start is the inclusive start of the range.
	Start T
	// End is the exclusive end of the range.
	End T
}

// NewRange builds the range [start, start+length)
func NewRange[T memutils.Number](start, length T) Range[T] {
	return Range[T]{Start: start, End: start + length}
}

// WellFormed returns true if r.Start <= r.End. Length and Empty are only meaningful
// for well-formed ranges.
func (r Range[T]) WellFormed() bool {
	return r.Start <= r.End
}

// Length returns the length of the range.
func (r Range[T]) Length() T {
	return r.End - r.Start
}

// Empty returns true if the range contains no values
func (r Range[T]) Empty() bool {
	return r.Start >= r.End
}

// Contains returns true if r contains x.
func (r Range[T]) Contains(x T) bool {
	return r.Start <= x && x < r.End
}

// Overlaps returns true if r and other share at least one value.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.Start < other.End && other.Start < r.End
}

// IsSupersetOf returns true if other lies entirely within r.
func (r Range[T]) IsSupersetOf(other Range[T]) bool {
	return r.Start <= other.Start && r.End >= other.End
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
