package rangealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slices"
)

// RangeAllocator sub-allocates a single contiguous range, such as the bytes of a device memory
// heap or the slots of a descriptor heap. It keeps a sorted list of the unused sub-ranges and
// hands out allocations using a best-fit search, carving each allocation from the start of the
// chosen free range. Freed ranges are coalesced with their neighbors.
//
// RangeAllocator is not safe for concurrent use. Callers that share one between goroutines
// must provide their own locking.
type RangeAllocator[T memutils.Number] struct {
	initialRange Range[T]
	// Ordered by ascending Start. No two entries overlap or touch.
	freeRanges []Range[T]
}

var _ memutils.Validatable = &RangeAllocator[uint64]{}

// New creates an allocator that owns r, with all of r initially free. r.Start must not be
// greater than r.End.
func New[T memutils.Number](r Range[T]) *RangeAllocator[T] {
	return &RangeAllocator[T]{
		initialRange: r,
		freeRanges:   []Range[T]{r},
	}
}

// InitialRange returns the full extent this allocator was created with
func (a *RangeAllocator[T]) InitialRange() Range[T] {
	return a.initialRange
}

// FreeRanges returns a copy of the currently unused ranges in ascending order
func (a *RangeAllocator[T]) FreeRanges() []Range[T] {
	return slices.Clone(a.freeRanges)
}

// AllocateRange reserves length values from the allocator. The smallest free range that can hold
// length is chosen; the scan stops early at the first free range whose length matches exactly.
// Among equally small candidates, the first one found wins. The allocation is taken from the start
// of the chosen free range.
//
// The boolean return value is false if no free range is large enough, in which case the allocator
// is left untouched.
func (a *RangeAllocator[T]) AllocateRange(length T) (Range[T], bool) {
	bestIndex := -1
	var bestLength T

	for index, r := range a.freeRanges {
		rangeLength := r.Length()
		if rangeLength < length {
			continue
		} else if rangeLength == length {
			// Perfect fit, stop looking
			bestIndex = index
			bestLength = rangeLength
			break
		}

		if bestIndex < 0 || rangeLength < bestLength {
			bestIndex = index
			bestLength = rangeLength
		}
	}

	if bestIndex < 0 {
		return Range[T]{}, false
	}

	start := a.freeRanges[bestIndex].Start
	if bestLength == length {
		a.freeRanges = slices.Delete(a.freeRanges, bestIndex, bestIndex+1)
	} else {
		a.freeRanges[bestIndex].Start += length
	}

	memutils.DebugValidate(a)
	return NewRange(start, length), true
}

// FreeRange returns r to the allocator, merging it with any free range that it touches.
//
// r must lie within InitialRange and must not be empty; FreeRange panics otherwise. r must also
// have been allocated and not already freed. That is not checked: freeing a range that is
// partially free corrupts the allocator.
func (a *RangeAllocator[T]) FreeRange(r Range[T]) {
	if !a.initialRange.IsSupersetOf(r) {
		panic(errors.AssertionFailedf("range %s is outside the allocator's range %s", r, a.initialRange))
	}
	if r.Start >= r.End {
		panic(errors.AssertionFailedf("cannot free the empty range %s", r))
	}

	i := slices.IndexFunc(a.freeRanges, func(free Range[T]) bool {
		return free.Start > r.Start
	})
	if i < 0 {
		i = len(a.freeRanges)
	}

	// Before: |left|-(r)-|right|
	touchesLeft := i > 0 && a.freeRanges[i-1].End == r.Start
	touchesRight := i < len(a.freeRanges) && a.freeRanges[i].Start == r.End

	switch {
	case touchesLeft && touchesRight:
		a.freeRanges[i-1].End = a.freeRanges[i].End
		a.freeRanges = slices.Delete(a.freeRanges, i, i+1)
	case touchesLeft:
		a.freeRanges[i-1].End = r.End
	case touchesRight:
		a.freeRanges[i].Start = r.Start
	default:
		if (i > 0 && a.freeRanges[i-1].End >= r.Start) ||
			(i < len(a.freeRanges) && r.End >= a.freeRanges[i].Start) {
			panic(errors.AssertionFailedf("freed range %s overlaps a range that is already free", r))
		}

		a.freeRanges = slices.Insert(a.freeRanges, i, r)
	}

	memutils.DebugValidate(a)
}

// Reset frees every allocation at once, leaving a single free range equal to InitialRange
func (a *RangeAllocator[T]) Reset() {
	a.freeRanges = append(a.freeRanges[:0], a.initialRange)
}

// SumFreeSize returns the total length of all free ranges
func (a *RangeAllocator[T]) SumFreeSize() T {
	var sum T
	for _, r := range a.freeRanges {
		sum += r.Length()
	}
	return sum
}

// FreeRegionsCount returns the number of disjoint free ranges
func (a *RangeAllocator[T]) FreeRegionsCount() int {
	return len(a.freeRanges)
}

// IsEmpty returns true if nothing is currently allocated
func (a *RangeAllocator[T]) IsEmpty() bool {
	return len(a.freeRanges) == 1 && a.freeRanges[0] == a.initialRange
}

// IsFull returns true if there are no free ranges left
func (a *RangeAllocator[T]) IsFull() bool {
	return len(a.freeRanges) == 0
}

// Validate checks the free list invariants: every free range is non-empty and inside the
// initial range, and the list is sorted with no two ranges overlapping or touching.
func (a *RangeAllocator[T]) Validate() error {
	for i, r := range a.freeRanges {
		if r.Empty() {
			return errors.Newf("free range %d (%s) is empty", i, r)
		}
		if !a.initialRange.IsSupersetOf(r) {
			return errors.Newf("free range %d (%s) lies outside the allocator's range %s", i, r, a.initialRange)
		}
		if i > 0 {
			prev := a.freeRanges[i-1]
			if prev.Start >= r.Start {
				return errors.Newf("free range %d (%s) is out of order with the free range before it (%s)", i, r, prev)
			}
			if prev.End >= r.Start {
				return errors.Newf("free range %d (%s) overlaps or touches the free range before it (%s)", i, r, prev)
			}
		}
	}

	return nil
}

// AddStatistics sums this allocator's occupancy into stats as a single block. The allocator does
// not track individual allocations, so AllocationCount is left to the caller.
func (a *RangeAllocator[T]) AddStatistics(stats *memutils.Statistics) {
	stats.BlockCount++
	stats.BlockBytes += int(a.initialRange.Length())
	stats.AllocationBytes += int(a.initialRange.Length() - a.SumFreeSize())
}

// AddDetailedStatistics sums this allocator's occupancy into stats as a single block, reporting
// each free range as an unused range.
func (a *RangeAllocator[T]) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	a.AddStatistics(&stats.Statistics)
	for _, r := range a.freeRanges {
		stats.AddUnusedRange(int(r.Length()))
	}
}

// BlockJsonData populates a json object with information about this allocator
func (a *RangeAllocator[T]) BlockJsonData(json *jwriter.ObjectState) {
	json.Name("TotalBytes").Int(int(a.initialRange.Length()))
	json.Name("UnusedBytes").Int(int(a.SumFreeSize()))
	json.Name("UnusedRanges").Int(len(a.freeRanges))

	arr := json.Name("FreeRanges").Array()
	defer arr.End()

	for _, r := range a.freeRanges {
		obj := arr.Object()
		obj.Name("Offset").Int(int(r.Start))
		obj.Name("Size").Int(int(r.Length()))
		obj.End()
	}
}
