package command

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/internal/utils"
)

// CommandPool hands out command buffers from a backend pool. Buffers are allocated from the
// backend lazily and never returned to it individually: each acquisition takes the next unused
// buffer, and Reset makes every buffer available again at once.
//
// A CommandPool is not safe for concurrent use. Work that records from several goroutines should
// use one pool per goroutine.
type CommandPool[B RawCommandBuffer] struct {
	logger     *slog.Logger
	raw        RawCommandPool[B]
	capability Capability

	buffers             []B
	secondaryBuffers    []B
	nextBuffer          int
	nextSecondaryBuffer int

	// Incremented on every Reset, so that buffers and submits acquired earlier can detect that
	// their slot has been recycled
	generation uint64
	released   bool
}

// NewCommandPool wraps a backend pool whose buffers can record work of the given capability.
// logger may be nil.
func NewCommandPool[B RawCommandBuffer](logger *slog.Logger, raw RawCommandPool[B], capability Capability) *CommandPool[B] {
	return &CommandPool[B]{
		logger:     utils.LoggerOrDiscard(logger),
		raw:        raw,
		capability: capability,
	}
}

func (p *CommandPool[B]) checkReleased() {
	if p.released {
		panic(errors.AssertionFailedf("command pool used after IntoRaw"))
	}
}

// Capability returns the capability of the work recorded into this pool's buffers
func (p *CommandPool[B]) Capability() Capability {
	return p.capability
}

// Reserved returns the number of primary buffers allocated from the backend
func (p *CommandPool[B]) Reserved() int {
	return len(p.buffers)
}

// ReservedSecondary returns the number of secondary buffers allocated from the backend
func (p *CommandPool[B]) ReservedSecondary() int {
	return len(p.secondaryBuffers)
}

// Acquired returns the number of primary buffers handed out since the last reset
func (p *CommandPool[B]) Acquired() int {
	return p.nextBuffer
}

// AcquiredSecondary returns the number of secondary buffers handed out since the last reset
func (p *CommandPool[B]) AcquiredSecondary() int {
	return p.nextSecondaryBuffer
}

// Reserve makes sure at least additional primary buffers can be acquired without allocating
// from the backend again
func (p *CommandPool[B]) Reserve(additional int) error {
	p.logger.Debug("CommandPool::Reserve")
	p.checkReleased()

	return p.reserve(LevelPrimary, additional)
}

// ReserveSecondary makes sure at least additional secondary buffers can be acquired without
// allocating from the backend again
func (p *CommandPool[B]) ReserveSecondary(additional int) error {
	p.logger.Debug("CommandPool::ReserveSecondary")
	p.checkReleased()

	return p.reserve(LevelSecondary, additional)
}

func (p *CommandPool[B]) levelState(level Level) (*[]B, *int) {
	if level == LevelSecondary {
		return &p.secondaryBuffers, &p.nextSecondaryBuffer
	}

	return &p.buffers, &p.nextBuffer
}

func (p *CommandPool[B]) reserve(level Level, additional int) error {
	buffers, next := p.levelState(level)

	available := len(*buffers) - *next
	if additional <= available {
		return nil
	}

	count := additional - available
	allocated, err := p.raw.Allocate(count, level)
	if err != nil {
		return errors.Wrapf(err, "failed to allocate %d %s command buffers", count, level)
	}
	if len(allocated) != count {
		return errors.AssertionFailedf("backend allocated %d %s command buffers, %d were requested", len(allocated), level, count)
	}

	*buffers = append(*buffers, allocated...)
	return nil
}

// AcquireCommandBuffer begins recording into the next unused primary buffer. If
// allowPendingResubmit is true, the buffer may be submitted again while an earlier submission
// of it is still executing.
//
// If the backend fails to begin the buffer, the buffer's slot is still consumed until the next
// Reset.
func (p *CommandPool[B]) AcquireCommandBuffer(shot Shot, allowPendingResubmit bool) (*CommandBuffer[B], error) {
	p.logger.Debug("CommandPool::AcquireCommandBuffer")
	p.checkReleased()

	return p.acquire(LevelPrimary, shot, beginFlags(shot, allowPendingResubmit), InheritanceInfo{})
}

// AcquireSecondaryCommandBuffer begins recording into the next unused secondary buffer with the
// provided inheritance info. The pool must support graphics work.
func (p *CommandPool[B]) AcquireSecondaryCommandBuffer(shot Shot, allowPendingResubmit bool, inheritance InheritanceInfo) (*CommandBuffer[B], error) {
	p.logger.Debug("CommandPool::AcquireSecondaryCommandBuffer")
	p.checkReleased()

	if !p.capability.Supports(CapabilityGraphics) {
		return nil, errors.Wrapf(ErrCapabilityUnsupported, "secondary command buffers need graphics capability but the pool has %s", p.capability)
	}

	return p.acquire(LevelSecondary, shot, beginFlags(shot, allowPendingResubmit), inheritance)
}

// AcquireSubpassCommandBuffer begins recording into the next unused secondary buffer for use
// entirely inside the given subpass. The pool must support graphics work.
func (p *CommandPool[B]) AcquireSubpassCommandBuffer(shot Shot, allowPendingResubmit bool, subpass Subpass, framebuffer Framebuffer) (*CommandBuffer[B], error) {
	p.logger.Debug("CommandPool::AcquireSubpassCommandBuffer")
	p.checkReleased()

	if !p.capability.Supports(CapabilityGraphics) {
		return nil, errors.Wrapf(ErrCapabilityUnsupported, "subpass command buffers need graphics capability but the pool has %s", p.capability)
	}

	flags := beginFlags(shot, allowPendingResubmit) | FlagRenderPassContinue
	inheritance := InheritanceInfo{
		Subpass:     &subpass,
		Framebuffer: framebuffer,
	}

	return p.acquire(LevelSecondary, shot, flags, inheritance)
}

func beginFlags(shot Shot, allowPendingResubmit bool) Flags {
	flags := shot.Flags()
	if allowPendingResubmit {
		flags |= FlagSimultaneousUse
	}
	return flags
}

func (p *CommandPool[B]) acquire(level Level, shot Shot, flags Flags, inheritance InheritanceInfo) (*CommandBuffer[B], error) {
	err := p.reserve(level, 1)
	if err != nil {
		return nil, err
	}

	buffers, next := p.levelState(level)
	index := *next
	*next++

	err = (*buffers)[index].Begin(flags, inheritance)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin %s command buffer %d", level, index)
	}

	return &CommandBuffer[B]{
		pool:       p,
		level:      level,
		index:      index,
		generation: p.generation,
		shot:       shot,
		flags:      flags,
		state:      StateRecording,
	}, nil
}

// Reset returns every buffer to the pool. The caller must make sure none of the pool's buffers
// are still executing on the device. Command buffers and submits acquired before the reset can
// no longer be used.
func (p *CommandPool[B]) Reset() error {
	p.logger.Debug("CommandPool::Reset")
	p.checkReleased()

	err := p.raw.Reset()
	if err != nil {
		p.logger.LogAttrs(context.Background(), slog.LevelError, "failed to reset command pool",
			slog.Int("generation", int(p.generation)),
			slog.Any("error", err),
		)
		return errors.Wrap(err, "failed to reset command pool")
	}

	p.nextBuffer = 0
	p.nextSecondaryBuffer = 0
	p.generation++

	return nil
}

// IntoRaw frees every buffer the pool has allocated and hands the backend pool back to the
// caller. The CommandPool, and every buffer and submit acquired from it, panics if used
// afterward.
func (p *CommandPool[B]) IntoRaw() RawCommandPool[B] {
	p.logger.Debug("CommandPool::IntoRaw")
	p.checkReleased()

	if p.nextBuffer > 0 || p.nextSecondaryBuffer > 0 {
		p.logger.LogAttrs(context.Background(), slog.LevelDebug, "    Freeing acquired command buffers",
			slog.Int("primary", p.nextBuffer),
			slog.Int("secondary", p.nextSecondaryBuffer),
		)
	}

	if len(p.buffers) > 0 {
		p.raw.Free(p.buffers)
	}
	if len(p.secondaryBuffers) > 0 {
		p.raw.Free(p.secondaryBuffers)
	}

	p.buffers = nil
	p.secondaryBuffers = nil
	p.nextBuffer = 0
	p.nextSecondaryBuffer = 0
	p.released = true

	return p.raw
}

func (p *CommandPool[B]) bufferAt(level Level, index int) B {
	buffers, _ := p.levelState(level)
	return (*buffers)[index]
}
