package command

import (
	"github.com/cockroachdb/errors"
)

// State is the lifecycle state of a command buffer
type State int

const (
	StateRecording State = iota
	StateExecutable
	// StateInvalid is reported once a buffer fails to end or its pool has been reset
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "Recording"
	case StateExecutable:
		return "Executable"
	case StateInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// CommandBuffer is a buffer acquired from a CommandPool. It refers to its backend buffer by
// index, so it stays valid only until the pool is reset.
type CommandBuffer[B RawCommandBuffer] struct {
	pool       *CommandPool[B]
	level      Level
	index      int
	generation uint64

	shot  Shot
	flags Flags
	state State
}

func (b *CommandBuffer[B]) stale() bool {
	return b.generation != b.pool.generation
}

// Raw returns the backend buffer, for recording commands into
func (b *CommandBuffer[B]) Raw() B {
	b.pool.checkReleased()
	return b.pool.bufferAt(b.level, b.index)
}

func (b *CommandBuffer[B]) Level() Level { return b.level }
func (b *CommandBuffer[B]) Shot() Shot   { return b.shot }
func (b *CommandBuffer[B]) Flags() Flags { return b.flags }

// Index returns the buffer's slot within its pool's primary or secondary list
func (b *CommandBuffer[B]) Index() int { return b.index }

// State returns the buffer's lifecycle state. A buffer whose pool has been reset since it was
// acquired is always StateInvalid.
func (b *CommandBuffer[B]) State() State {
	if b.pool.released || b.stale() {
		return StateInvalid
	}

	return b.state
}

// ExecuteCommands records the execution of secondary command buffers into this primary buffer.
// Each submit must be a secondary buffer of a capability this buffer's pool supports. One-shot
// submits are consumed.
func (b *CommandBuffer[B]) ExecuteCommands(submits ...*Submit[B]) error {
	b.pool.checkReleased()

	if b.level != LevelPrimary {
		return errors.Wrap(ErrInvalidLevel, "only primary command buffers can execute secondary command buffers")
	}
	if b.stale() {
		return ErrStaleCommandBuffer
	}
	if b.state != StateRecording {
		return errors.Wrapf(ErrNotRecording, "command buffer is %s", b.state)
	}

	for i, submit := range submits {
		if submit.level != LevelSecondary {
			return errors.Wrapf(ErrInvalidLevel, "submit %d is a %s command buffer", i, submit.level)
		}
		if !b.pool.capability.Supports(submit.capability) {
			return errors.Wrapf(ErrCapabilityUnsupported, "submit %d needs %s but the command buffer has %s", i, submit.capability, b.pool.capability)
		}
	}

	err := ValidateBatch(submits)
	if err != nil {
		return err
	}

	executor, ok := any(b.Raw()).(SecondaryExecutor[B])
	if !ok {
		return ErrSecondaryUnsupported
	}

	raw := make([]B, 0, len(submits))
	for _, submit := range submits {
		buffer, err := submit.Consume()
		if err != nil {
			return err
		}
		raw = append(raw, buffer)
	}

	return executor.ExecuteCommands(raw)
}

// Finish ends recording and returns a token that can be submitted to a queue, or executed from
// a primary buffer if this is a secondary buffer. If the backend fails to end the buffer, the
// buffer becomes invalid until the pool is reset.
func (b *CommandBuffer[B]) Finish() (*Submit[B], error) {
	b.pool.checkReleased()

	if b.stale() {
		return nil, ErrStaleCommandBuffer
	}
	if b.state != StateRecording {
		return nil, errors.Wrapf(ErrNotRecording, "command buffer is %s", b.state)
	}

	err := b.Raw().End()
	if err != nil {
		b.state = StateInvalid
		return nil, errors.Wrapf(err, "failed to end %s command buffer %d", b.level, b.index)
	}
	b.state = StateExecutable

	return &Submit[B]{
		pool:       b.pool,
		level:      b.level,
		index:      b.index,
		generation: b.generation,
		shot:       b.shot,
		flags:      b.flags,
		capability: b.pool.capability,
	}, nil
}
