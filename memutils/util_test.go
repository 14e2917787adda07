package memutils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(uint64(1), "granularity"))
	require.NoError(t, memutils.CheckPow2(uint64(256), "granularity"))
	require.NoError(t, memutils.CheckPow2(uint32(1<<31), "granularity"))

	err := memutils.CheckPow2(uint64(48), "granularity")
	require.Error(t, err)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "granularity is 48")

	err = memutils.CheckPow2(0, "handleSize")
	require.True(t, errors.Is(err, memutils.ZeroSizeError))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint64(0), memutils.AlignUp(uint64(0), 256))
	require.Equal(t, uint64(256), memutils.AlignUp(uint64(1), 256))
	require.Equal(t, uint64(256), memutils.AlignUp(uint64(256), 256))
	require.Equal(t, uint64(512), memutils.AlignUp(uint64(257), 256))
	require.Equal(t, 12, memutils.AlignUp(9, 4))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uint32(0), memutils.AlignDown(uint32(255), 256))
	require.Equal(t, uint32(256), memutils.AlignDown(uint32(256), 256))
	require.Equal(t, uint32(256), memutils.AlignDown(uint32(511), 256))
	require.Equal(t, 8, memutils.AlignDown(11, 4))
}
