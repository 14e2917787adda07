package rangealloc_test

import (
	"testing"

	"github.com/gfx-rs/gfx-sub004/memutils/rangealloc"
	"github.com/stretchr/testify/require"
)

func TestRangeBasics(t *testing.T) {
	r := rangealloc.NewRange[uint32](4, 6)
	require.Equal(t, rangealloc.Range[uint32]{Start: 4, End: 10}, r)
	require.Equal(t, uint32(6), r.Length())
	require.True(t, r.WellFormed())
	require.False(t, r.Empty())
	require.Equal(t, "4..10", r.String())

	require.True(t, r.Contains(4))
	require.True(t, r.Contains(9))
	require.False(t, r.Contains(10))
	require.False(t, r.Contains(3))

	require.True(t, rangealloc.Range[uint32]{Start: 3, End: 3}.Empty())
	require.False(t, rangealloc.Range[uint32]{Start: 5, End: 3}.WellFormed())
}

func TestRangeOverlapAndSuperset(t *testing.T) {
	r := rng(10, 20)

	require.True(t, r.Overlaps(rng(15, 25)))
	require.True(t, r.Overlaps(rng(0, 11)))
	require.False(t, r.Overlaps(rng(20, 30)))
	require.False(t, r.Overlaps(rng(0, 10)))

	require.True(t, r.IsSupersetOf(r))
	require.True(t, r.IsSupersetOf(rng(12, 18)))
	require.False(t, r.IsSupersetOf(rng(9, 18)))
	require.False(t, r.IsSupersetOf(rng(12, 21)))
}
