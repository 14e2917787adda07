package command

import "github.com/vkngwrapper/core/v2/common"

// Flags are the usage flags a command buffer is begun with
type Flags int32

var flagsMapping = common.NewFlagStringMapping[Flags]()

func (f Flags) Register(str string) {
	flagsMapping.Register(f, str)
}
func (f Flags) String() string {
	return flagsMapping.FlagsToString(f)
}

const (
	// FlagOneTimeSubmit indicates the command buffer will be submitted once and then reset or
	// discarded
	FlagOneTimeSubmit Flags = 1 << iota
	// FlagRenderPassContinue indicates a secondary command buffer is recorded entirely inside
	// a render pass. Its inheritance info must carry the subpass.
	FlagRenderPassContinue
	// FlagSimultaneousUse allows the command buffer to be resubmitted while a previous submission
	// of it is still pending on the device
	FlagSimultaneousUse
)

func init() {
	FlagOneTimeSubmit.Register("FlagOneTimeSubmit")
	FlagRenderPassContinue.Register("FlagRenderPassContinue")
	FlagSimultaneousUse.Register("FlagSimultaneousUse")
}

// PoolCreateFlags are passed through to the backend when its command pool is created
type PoolCreateFlags int32

var poolCreateFlagsMapping = common.NewFlagStringMapping[PoolCreateFlags]()

func (f PoolCreateFlags) Register(str string) {
	poolCreateFlagsMapping.Register(f, str)
}
func (f PoolCreateFlags) String() string {
	return poolCreateFlagsMapping.FlagsToString(f)
}

const (
	// PoolCreateTransient hints that buffers from the pool are short-lived
	PoolCreateTransient PoolCreateFlags = 1 << iota
	// PoolCreateResetIndividual allows buffers to be reset one at a time instead of only through
	// the pool
	PoolCreateResetIndividual
)

func init() {
	PoolCreateTransient.Register("PoolCreateTransient")
	PoolCreateResetIndividual.Register("PoolCreateResetIndividual")
}

// Level distinguishes primary command buffers, which are submitted to queues, from secondary
// command buffers, which are executed from a primary one.
type Level int

const (
	LevelPrimary Level = iota
	LevelSecondary
)

func (l Level) String() string {
	switch l {
	case LevelPrimary:
		return "Primary"
	case LevelSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// Shot states how many times a recorded command buffer may be submitted before it is re-recorded
type Shot int

const (
	// OneShot buffers are submitted once
	OneShot Shot = iota
	// MultiShot buffers may be submitted any number of times
	MultiShot
)

// Flags returns the usage flags implied by the shot
func (s Shot) Flags() Flags {
	if s == OneShot {
		return FlagOneTimeSubmit
	}

	return 0
}

func (s Shot) String() string {
	switch s {
	case OneShot:
		return "OneShot"
	case MultiShot:
		return "MultiShot"
	default:
		return "Unknown"
	}
}
