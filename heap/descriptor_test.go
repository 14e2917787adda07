package heap_test

import (
	"testing"

	"github.com/gfx-rs/gfx-sub004/heap"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/stretchr/testify/require"
)

func TestDescriptorHeapHandles(t *testing.T) {
	h, err := heap.NewDescriptorHeap(nil, heap.DescriptorHeapOptions{
		Capacity:   16,
		HandleSize: 32,
		Start:      heap.DualHandle{CPU: 0x1000, GPU: 0x80000},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(32), h.HandleSize())

	require.Equal(t, heap.DualHandle{CPU: 0x1000 + 3*32, GPU: 0x80000 + 3*32}, h.At(3))

	first, err := h.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, h.At(0), first.Handle)
	require.Equal(t, uint32(4), first.Count)

	second, err := h.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, h.At(4), second.Handle)
	require.Equal(t, uint32(4), h.FreeSlots())

	_, err = h.Allocate(5)
	require.ErrorIs(t, err, heap.ErrOutOfDescriptors)

	h.Free(first)
	require.Equal(t, uint32(8), h.FreeSlots())

	// The freed run at the start is an exact fit
	again, err := h.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, h.At(0), again.Handle)

	h.Clear()
	require.Equal(t, uint32(16), h.FreeSlots())
}

func TestDescriptorHeapOptions(t *testing.T) {
	_, err := heap.NewDescriptorHeap(nil, heap.DescriptorHeapOptions{Capacity: 0, HandleSize: 32})
	require.ErrorIs(t, err, memutils.ZeroSizeError)

	_, err = heap.NewDescriptorHeap(nil, heap.DescriptorHeapOptions{Capacity: 8})
	require.ErrorIs(t, err, memutils.ZeroSizeError)

	h, err := heap.NewDescriptorHeap(nil, heap.DescriptorHeapOptions{Capacity: 8, HandleSize: 8})
	require.NoError(t, err)
	_, err = h.Allocate(0)
	require.ErrorIs(t, err, memutils.ZeroSizeError)
}

func TestDescriptorHeapStatistics(t *testing.T) {
	h, err := heap.NewDescriptorHeap(nil, heap.DescriptorHeapOptions{Capacity: 64, HandleSize: 16})
	require.NoError(t, err)

	_, err = h.Allocate(10)
	require.NoError(t, err)

	var stats memutils.DetailedStatistics
	stats.Clear()
	h.AddDetailedStatistics(&stats)

	require.Equal(t, 1, stats.BlockCount)
	require.Equal(t, 64, stats.BlockBytes)
	require.Equal(t, 10, stats.AllocationBytes)
	require.Equal(t, 1, stats.UnusedRangeCount)
	require.Equal(t, 54, stats.UnusedRangeSizeMax)
}

func TestDescriptorPoolAllocateSet(t *testing.T) {
	pool, err := heap.NewDescriptorPool(nil, 256)
	require.NoError(t, err)

	small := heap.DescriptorSetLayout{EncodedLength: 64}
	large := heap.DescriptorSetLayout{EncodedLength: 128}

	a, err := pool.AllocateSet(small)
	require.NoError(t, err)
	require.Equal(t, uint64(0), a.Offset)

	b, err := pool.AllocateSet(large)
	require.NoError(t, err)
	require.Equal(t, uint64(64), b.Offset)
	require.Equal(t, large, b.Layout)

	_, err = pool.AllocateSet(large)
	require.ErrorIs(t, err, heap.ErrOutOfPoolMemory)

	_, err = pool.AllocateSet(heap.DescriptorSetLayout{})
	require.ErrorIs(t, err, heap.ErrIncompatibleLayout)

	pool.FreeSets(a, b)
	require.Equal(t, uint64(256), pool.FreeBytes())
}

func TestDescriptorPoolAllocateSetsRollsBack(t *testing.T) {
	pool, err := heap.NewDescriptorPool(nil, 256)
	require.NoError(t, err)

	layout := heap.DescriptorSetLayout{EncodedLength: 96}

	sets, err := pool.AllocateSets(layout, layout)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	require.Equal(t, uint64(64), pool.FreeBytes())
	pool.FreeSets(sets...)

	_, err = pool.AllocateSets(layout, layout, layout)
	require.ErrorIs(t, err, heap.ErrOutOfPoolMemory)
	require.Equal(t, uint64(256), pool.FreeBytes())
}

func TestDescriptorPoolReset(t *testing.T) {
	_, err := heap.NewDescriptorPool(nil, 0)
	require.ErrorIs(t, err, memutils.ZeroSizeError)

	pool, err := heap.NewDescriptorPool(nil, 128)
	require.NoError(t, err)

	_, err = pool.AllocateSets(heap.DescriptorSetLayout{EncodedLength: 32}, heap.DescriptorSetLayout{EncodedLength: 96})
	require.NoError(t, err)
	require.Equal(t, uint64(0), pool.FreeBytes())

	pool.Reset()
	require.Equal(t, uint64(128), pool.FreeBytes())
}
