package heap

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/internal/utils"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/gfx-rs/gfx-sub004/memutils/rangealloc"
)

// DualHandle is a descriptor address as seen from the CPU and from the GPU
type DualHandle struct {
	CPU uint64
	GPU uint64
}

// DescriptorRange is a run of consecutive descriptor slots handed out by a DescriptorHeap
type DescriptorRange struct {
	Handle DualHandle
	Count  uint32
}

type DescriptorHeapOptions struct {
	// Capacity is the number of descriptor slots in the heap
	Capacity uint32
	// HandleSize is the distance in bytes between two consecutive descriptors
	HandleSize uint64
	// Start is the address of slot 0
	Start DualHandle
}

// DescriptorHeap hands out runs of slots from a shader-visible descriptor heap. It is always
// guarded by a mutex, since descriptor sets are allocated from many threads at once.
type DescriptorHeap struct {
	logger     *slog.Logger
	mutex      utils.OptionalMutex
	start      DualHandle
	handleSize uint64
	allocator  *rangealloc.RangeAllocator[uint32]
}

func NewDescriptorHeap(logger *slog.Logger, options DescriptorHeapOptions) (*DescriptorHeap, error) {
	if options.Capacity == 0 {
		return nil, errors.Wrap(memutils.ZeroSizeError, "descriptor heap capacity is 0")
	}
	if options.HandleSize == 0 {
		return nil, errors.Wrap(memutils.ZeroSizeError, "descriptor handle size is 0")
	}

	return &DescriptorHeap{
		logger:     utils.LoggerOrDiscard(logger),
		mutex:      utils.OptionalMutex{UseMutex: true},
		start:      options.Start,
		handleSize: options.HandleSize,
		allocator:  rangealloc.New(rangealloc.Range[uint32]{Start: 0, End: options.Capacity}),
	}, nil
}

func (h *DescriptorHeap) HandleSize() uint64 {
	return h.handleSize
}

// At returns the address of the descriptor in slot index
func (h *DescriptorHeap) At(index uint32) DualHandle {
	offset := h.handleSize * uint64(index)
	return DualHandle{
		CPU: h.start.CPU + offset,
		GPU: h.start.GPU + offset,
	}
}

// Allocate reserves count consecutive slots
func (h *DescriptorHeap) Allocate(count uint32) (DescriptorRange, error) {
	h.logger.Debug("DescriptorHeap::Allocate")

	if count == 0 {
		return DescriptorRange{}, errors.Wrap(memutils.ZeroSizeError, "descriptor count is 0")
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	rng, ok := h.allocator.AllocateRange(count)
	if !ok {
		return DescriptorRange{}, errors.Wrapf(ErrOutOfDescriptors, "could not fit %d descriptors (%d free)", count, h.allocator.SumFreeSize())
	}

	return DescriptorRange{
		Handle: h.At(rng.Start),
		Count:  count,
	}, nil
}

// Free returns a range of slots to the heap. The range's slot is recovered from its GPU address.
func (h *DescriptorHeap) Free(descriptors DescriptorRange) {
	h.logger.Debug("DescriptorHeap::Free")

	h.mutex.Lock()
	defer h.mutex.Unlock()

	start := uint32((descriptors.Handle.GPU - h.start.GPU) / h.handleSize)
	h.allocator.FreeRange(rangealloc.NewRange(start, descriptors.Count))
}

// Clear frees every slot at once
func (h *DescriptorHeap) Clear() {
	h.logger.Debug("DescriptorHeap::Clear")

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.allocator.Reset()
}

// FreeSlots returns the number of unused slots
func (h *DescriptorHeap) FreeSlots() uint32 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.allocator.SumFreeSize()
}

// AddDetailedStatistics sums the heap's occupancy, in slots, into stats
func (h *DescriptorHeap) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.allocator.AddDetailedStatistics(stats)
}
