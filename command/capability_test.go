package command_test

import (
	"testing"

	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/stretchr/testify/require"
)

var allCapabilities = []command.Capability{
	command.CapabilityGeneral,
	command.CapabilityGraphics,
	command.CapabilityCompute,
	command.CapabilityTransfer,
}

func TestCapabilitySupports(t *testing.T) {
	supported := map[command.Capability][]command.Capability{
		command.CapabilityGeneral:  {command.CapabilityGeneral, command.CapabilityGraphics, command.CapabilityCompute, command.CapabilityTransfer},
		command.CapabilityGraphics: {command.CapabilityGraphics, command.CapabilityTransfer},
		command.CapabilityCompute:  {command.CapabilityCompute, command.CapabilityTransfer},
		command.CapabilityTransfer: {command.CapabilityTransfer},
	}

	for _, c := range allCapabilities {
		for _, other := range allCapabilities {
			require.Equal(t, contains(supported[c], other), c.Supports(other), "%s supports %s", c, other)
		}
	}
}

func contains(list []command.Capability, c command.Capability) bool {
	for _, item := range list {
		if item == c {
			return true
		}
	}
	return false
}

func TestCapabilityUpper(t *testing.T) {
	testCases := []struct {
		a, b, upper command.Capability
	}{
		{command.CapabilityTransfer, command.CapabilityTransfer, command.CapabilityTransfer},
		{command.CapabilityTransfer, command.CapabilityGraphics, command.CapabilityGraphics},
		{command.CapabilityTransfer, command.CapabilityCompute, command.CapabilityCompute},
		{command.CapabilityTransfer, command.CapabilityGeneral, command.CapabilityGeneral},
		{command.CapabilityGraphics, command.CapabilityCompute, command.CapabilityGeneral},
		{command.CapabilityGraphics, command.CapabilityGeneral, command.CapabilityGeneral},
		{command.CapabilityCompute, command.CapabilityGeneral, command.CapabilityGeneral},
		{command.CapabilityGraphics, command.CapabilityGraphics, command.CapabilityGraphics},
	}

	for _, testCase := range testCases {
		require.Equal(t, testCase.upper, testCase.a.Upper(testCase.b), "%s upper %s", testCase.a, testCase.b)
		require.Equal(t, testCase.upper, testCase.b.Upper(testCase.a), "%s upper %s", testCase.b, testCase.a)
	}
}

func TestCapabilitySupportedBy(t *testing.T) {
	require.True(t, command.CapabilityGeneral.SupportedBy(command.QueueTypeGeneral))
	require.False(t, command.CapabilityGeneral.SupportedBy(command.QueueTypeGraphics))

	require.True(t, command.CapabilityGraphics.SupportedBy(command.QueueTypeGeneral))
	require.True(t, command.CapabilityGraphics.SupportedBy(command.QueueTypeGraphics))
	require.False(t, command.CapabilityGraphics.SupportedBy(command.QueueTypeCompute))

	require.True(t, command.CapabilityCompute.SupportedBy(command.QueueTypeCompute))
	require.False(t, command.CapabilityCompute.SupportedBy(command.QueueTypeTransfer))

	for _, queueType := range []command.QueueType{command.QueueTypeGeneral, command.QueueTypeGraphics, command.QueueTypeCompute, command.QueueTypeTransfer} {
		require.True(t, command.CapabilityTransfer.SupportedBy(queueType))
	}

	require.True(t, command.QueueTypeGraphics.SupportsGraphics())
	require.False(t, command.QueueTypeGraphics.SupportsCompute())
}

func TestFlagStrings(t *testing.T) {
	require.Equal(t, "FlagOneTimeSubmit", command.FlagOneTimeSubmit.String())
	require.Equal(t, "PoolCreateTransient", command.PoolCreateTransient.String())
	require.Equal(t, command.FlagOneTimeSubmit, command.OneShot.Flags())
	require.Equal(t, command.Flags(0), command.MultiShot.Flags())
	require.Equal(t, "Secondary", command.LevelSecondary.String())
}

func TestStateStrings(t *testing.T) {
	require.Equal(t, "Recording", command.StateRecording.String())
	require.Equal(t, "Executable", command.StateExecutable.String())
	require.Equal(t, "Invalid", command.StateInvalid.String())
	require.Equal(t, "Unknown", command.State(-1).String())
	require.Equal(t, command.State(0), command.StateRecording)
}
