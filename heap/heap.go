package heap

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/gfx-rs/gfx-sub004/internal/utils"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/gfx-rs/gfx-sub004/memutils/rangealloc"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// AllocationHandle identifies a live allocation within a Heap. The zero handle is never issued.
type AllocationHandle uint64

// Allocation is a sub-range of a Heap handed out by Allocate
type Allocation struct {
	Handle AllocationHandle
	Offset int
	// Size is the size that was requested, before rounding up to the heap's granularity
	Size int
}

type CreateOptions struct {
	// Size is the size of the heap in bytes
	Size int
	// Granularity is the alignment of every allocation's offset and size. It must be a power of
	// two. Zero means 1.
	Granularity int
	// Synchronized guards the heap with a mutex so it can be shared between goroutines
	Synchronized bool
	// Name is used in logs and json dumps
	Name string
}

type liveAllocation struct {
	rng           rangealloc.Range[uint64]
	requestedSize int
}

// Heap sub-allocates a single region of device memory, such as one vkDeviceMemory object or one
// ID3D12Heap, using a best-fit range allocator
type Heap struct {
	logger      *slog.Logger
	mutex       utils.OptionalRWMutex
	name        string
	granularity uint64

	allocator   *rangealloc.RangeAllocator[uint64]
	allocations *swiss.Map[AllocationHandle, liveAllocation]
	nextHandle  AllocationHandle
}

var _ memutils.Validatable = &Heap{}

func New(logger *slog.Logger, options CreateOptions) (*Heap, error) {
	if options.Size <= 0 {
		return nil, errors.Wrapf(memutils.ZeroSizeError, "heap size is %d", options.Size)
	}

	granularity := options.Granularity
	if granularity == 0 {
		granularity = 1
	}
	err := memutils.CheckPow2(granularity, "heap granularity")
	if err != nil {
		return nil, err
	}

	return &Heap{
		logger:      utils.LoggerOrDiscard(logger),
		mutex:       utils.OptionalRWMutex{UseMutex: options.Synchronized},
		name:        options.Name,
		granularity: uint64(granularity),
		allocator:   rangealloc.New(rangealloc.Range[uint64]{Start: 0, End: uint64(options.Size)}),
		allocations: swiss.NewMap[AllocationHandle, liveAllocation](42),
		nextHandle:  1,
	}, nil
}

func (h *Heap) Name() string {
	return h.name
}

// Size returns the size of the heap in bytes
func (h *Heap) Size() int {
	return int(h.allocator.InitialRange().Length())
}

// Allocate reserves size bytes from the heap. The returned offset and the reserved size are both
// multiples of the heap's granularity. ErrOutOfHeapMemory is returned if no free range is large
// enough, even if the total free space is.
func (h *Heap) Allocate(size int) (Allocation, error) {
	h.logger.Debug("Heap::Allocate")

	if size <= 0 {
		return Allocation{}, errors.Wrapf(memutils.ZeroSizeError, "allocation size is %d", size)
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	alignedSize := memutils.AlignUp(uint64(size), h.granularity)
	rng, ok := h.allocator.AllocateRange(alignedSize)
	if !ok {
		return Allocation{}, errors.Wrapf(ErrOutOfHeapMemory, "heap %q could not fit %d bytes (%d free)", h.name, alignedSize, h.allocator.SumFreeSize())
	}

	handle := h.nextHandle
	h.nextHandle++
	h.allocations.Put(handle, liveAllocation{rng: rng, requestedSize: size})

	return Allocation{
		Handle: handle,
		Offset: int(rng.Start),
		Size:   size,
	}, nil
}

// Free returns an allocation to the heap. Freeing a handle the heap did not issue, or one that
// was already freed, returns ErrUnknownAllocation.
func (h *Heap) Free(handle AllocationHandle) error {
	h.logger.Debug("Heap::Free")

	h.mutex.Lock()
	defer h.mutex.Unlock()

	live, ok := h.allocations.Get(handle)
	if !ok {
		return errors.Wrapf(ErrUnknownAllocation, "heap %q has no allocation %d", h.name, handle)
	}

	h.allocations.Delete(handle)
	h.allocator.FreeRange(live.rng)

	return nil
}

// Reset frees every allocation at once
func (h *Heap) Reset() {
	h.logger.Debug("Heap::Reset")

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.allocations = swiss.NewMap[AllocationHandle, liveAllocation](42)
	h.allocator.Reset()
}

// AllocationCount returns the number of live allocations
func (h *Heap) AllocationCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return h.allocations.Count()
}

// IsEmpty returns true if there are no live allocations
func (h *Heap) IsEmpty() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return h.allocations.Count() == 0
}

// Destroy checks that every allocation was freed. Allocations that were not are logged at error
// level and an error is returned.
func (h *Heap) Destroy() error {
	h.logger.Debug("Heap::Destroy")

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.allocations.Count() == 0 {
		return nil
	}

	for _, live := range h.sortedAllocations() {
		h.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unfreed allocation",
			slog.String("heap", h.name),
			slog.Int("handle", int(live.handle)),
			slog.Int("offset", int(live.rng.Start)),
			slog.Int("size", live.requestedSize),
		)
	}

	return errors.Newf("%d allocations were not freed before the destruction of heap %q", h.allocations.Count(), h.name)
}

type handleAllocation struct {
	liveAllocation
	handle AllocationHandle
}

func (h *Heap) sortedAllocations() []handleAllocation {
	sorted := make([]handleAllocation, 0, h.allocations.Count())
	h.allocations.Iter(func(handle AllocationHandle, live liveAllocation) bool {
		sorted = append(sorted, handleAllocation{liveAllocation: live, handle: handle})
		return false
	})

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].rng.Start < sorted[j].rng.Start
	})
	return sorted
}

// Validate checks the allocator's free list and that the live allocations and free ranges
// together cover the heap exactly once
func (h *Heap) Validate() error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	err := h.allocator.Validate()
	if err != nil {
		return err
	}

	covered := h.allocator.SumFreeSize()
	var prev *handleAllocation
	for _, live := range h.sortedAllocations() {
		live := live
		if live.rng.Start%h.granularity != 0 {
			return errors.Newf("allocation %d at offset %d is not aligned to the heap granularity %d", live.handle, live.rng.Start, h.granularity)
		}
		if prev != nil && prev.rng.Overlaps(live.rng) {
			return errors.Newf("allocation %d (%s) overlaps allocation %d (%s)", live.handle, live.rng, prev.handle, prev.rng)
		}
		for _, free := range h.allocator.FreeRanges() {
			if free.Overlaps(live.rng) {
				return errors.Newf("allocation %d (%s) overlaps free range %s", live.handle, live.rng, free)
			}
		}

		covered += live.rng.Length()
		prev = &live
	}

	if covered != h.allocator.InitialRange().Length() {
		return errors.Newf("live allocations and free ranges cover %d bytes of a %d byte heap", covered, h.allocator.InitialRange().Length())
	}

	return nil
}

// AddStatistics sums the heap's occupancy into stats
func (h *Heap) AddStatistics(stats *memutils.Statistics) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	h.allocator.AddStatistics(stats)
	stats.AllocationCount += h.allocations.Count()
}

// AddDetailedStatistics sums the heap's occupancy into stats, including the size of each
// allocation and each unused range
func (h *Heap) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	stats.BlockCount++
	stats.BlockBytes += int(h.allocator.InitialRange().Length())

	h.allocations.Iter(func(_ AllocationHandle, live liveAllocation) bool {
		stats.AddAllocation(int(live.rng.Length()))
		return false
	})

	for _, free := range h.allocator.FreeRanges() {
		stats.AddUnusedRange(int(free.Length()))
	}
}

// PrintDetailedMap writes a json object describing the heap's free ranges and live allocations
func (h *Heap) PrintDetailedMap(writer *jwriter.Writer) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	objState.Name("Name").String(h.name)
	objState.Name("Granularity").Int(int(h.granularity))
	h.allocator.BlockJsonData(&objState)

	arrayState := objState.Name("Allocations").Array()
	defer arrayState.End()

	for _, live := range h.sortedAllocations() {
		obj := arrayState.Object()
		obj.Name("Handle").Int(int(live.handle))
		obj.Name("Offset").Int(int(live.rng.Start))
		obj.Name("Size").Int(live.requestedSize)
		obj.End()
	}
}
