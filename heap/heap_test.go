package heap_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/gfx-rs/gfx-sub004/heap"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
)

func TestNewHeapValidatesOptions(t *testing.T) {
	_, err := heap.New(nil, heap.CreateOptions{Size: 0})
	require.ErrorIs(t, err, memutils.ZeroSizeError)

	_, err = heap.New(nil, heap.CreateOptions{Size: 1024, Granularity: 48})
	require.ErrorIs(t, err, memutils.PowerOfTwoError)

	h, err := heap.New(nil, heap.CreateOptions{Size: 1024, Name: "upload"})
	require.NoError(t, err)
	require.Equal(t, 1024, h.Size())
	require.Equal(t, "upload", h.Name())
	require.True(t, h.IsEmpty())
}

func TestHeapAllocateAlignsToGranularity(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 1024, Granularity: 256})
	require.NoError(t, err)

	first, err := h.Allocate(100)
	require.NoError(t, err)
	require.Equal(t, 0, first.Offset)
	require.Equal(t, 100, first.Size)

	second, err := h.Allocate(300)
	require.NoError(t, err)
	require.Equal(t, 256, second.Offset)
	require.NotEqual(t, first.Handle, second.Handle)

	third, err := h.Allocate(256)
	require.NoError(t, err)
	require.Equal(t, 768, third.Offset)

	_, err = h.Allocate(1)
	require.ErrorIs(t, err, heap.ErrOutOfHeapMemory)

	require.NoError(t, h.Validate())
	require.Equal(t, 3, h.AllocationCount())
}

func TestHeapFreeReusesSpace(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 300})
	require.NoError(t, err)

	a, err := h.Allocate(100)
	require.NoError(t, err)
	b, err := h.Allocate(100)
	require.NoError(t, err)
	_, err = h.Allocate(100)
	require.NoError(t, err)

	require.NoError(t, h.Free(b.Handle))
	require.NoError(t, h.Free(a.Handle))

	// The two freed neighbors merged into one 200 byte hole
	big, err := h.Allocate(200)
	require.NoError(t, err)
	require.Equal(t, 0, big.Offset)
	require.NoError(t, h.Validate())
}

func TestHeapFreeUnknownHandle(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 64})
	require.NoError(t, err)

	alloc, err := h.Allocate(16)
	require.NoError(t, err)
	require.NoError(t, h.Free(alloc.Handle))

	require.ErrorIs(t, h.Free(alloc.Handle), heap.ErrUnknownAllocation)
	require.ErrorIs(t, h.Free(0), heap.ErrUnknownAllocation)

	_, err = h.Allocate(0)
	require.ErrorIs(t, err, memutils.ZeroSizeError)
}

func TestHeapReset(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 64})
	require.NoError(t, err)

	alloc, err := h.Allocate(64)
	require.NoError(t, err)

	h.Reset()
	require.True(t, h.IsEmpty())
	require.ErrorIs(t, h.Free(alloc.Handle), heap.ErrUnknownAllocation)

	again, err := h.Allocate(64)
	require.NoError(t, err)
	require.Equal(t, 0, again.Offset)
	require.NotEqual(t, alloc.Handle, again.Handle)
}

func TestHeapDestroyLogsUnreleasedAllocations(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	h, err := heap.New(logger, heap.CreateOptions{Size: 64, Name: "vertex"})
	require.NoError(t, err)

	alloc, err := h.Allocate(16)
	require.NoError(t, err)

	require.Error(t, h.Destroy())
	require.Contains(t, logs.String(), "[UNRELEASED MEMORY] unfreed allocation")
	require.Contains(t, logs.String(), "heap=vertex")

	require.NoError(t, h.Free(alloc.Handle))
	require.NoError(t, h.Destroy())
}

func TestHeapStatistics(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 1000})
	require.NoError(t, err)

	_, err = h.Allocate(100)
	require.NoError(t, err)
	middle, err := h.Allocate(300)
	require.NoError(t, err)
	_, err = h.Allocate(200)
	require.NoError(t, err)
	require.NoError(t, h.Free(middle.Handle))

	var stats memutils.DetailedStatistics
	stats.Clear()
	h.AddDetailedStatistics(&stats)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			BlockCount:      1,
			BlockBytes:      1000,
			AllocationCount: 2,
			AllocationBytes: 300,
		},
		UnusedRangeCount:   2,
		AllocationSizeMin:  100,
		AllocationSizeMax:  200,
		UnusedRangeSizeMin: 300,
		UnusedRangeSizeMax: 400,
	}, stats)

	var simple memutils.Statistics
	h.AddStatistics(&simple)
	require.Equal(t, memutils.Statistics{
		BlockCount:      1,
		BlockBytes:      1000,
		AllocationCount: 2,
		AllocationBytes: 300,
	}, simple)
}

func TestHeapPrintDetailedMap(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 128, Granularity: 32, Name: "staging"})
	require.NoError(t, err)

	first, err := h.Allocate(20)
	require.NoError(t, err)
	_, err = h.Allocate(40)
	require.NoError(t, err)
	require.NoError(t, h.Free(first.Handle))

	writer := jwriter.NewWriter()
	h.PrintDetailedMap(&writer)
	require.NoError(t, writer.Error())

	require.JSONEq(t, `{
		"Name": "staging",
		"Granularity": 32,
		"TotalBytes": 128,
		"UnusedBytes": 64,
		"UnusedRanges": 2,
		"FreeRanges": [
			{"Offset": 0, "Size": 32},
			{"Offset": 96, "Size": 32}
		],
		"Allocations": [
			{"Handle": 2, "Offset": 32, "Size": 40}
		]
	}`, string(writer.Bytes()))
}

func TestSynchronizedHeapConcurrentUse(t *testing.T) {
	h, err := heap.New(nil, heap.CreateOptions{Size: 64 * 1024, Granularity: 16, Synchronized: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				alloc, err := h.Allocate(64)
				if err != nil {
					t.Error(err)
					return
				}
				if err := h.Free(alloc.Handle); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.True(t, h.IsEmpty())
	require.NoError(t, h.Validate())
}
