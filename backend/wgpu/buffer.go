package wgpu

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/gogpu/wgpu/hal"
)

// CommandBuffer implements command.RawCommandBuffer over a hal command encoder. Commands are
// recorded through Encoder while the buffer is recording; after End, the encoded
// hal.CommandBuffer is available through HALCommandBuffer until the owning pool is reset.
type CommandBuffer struct {
	label   string
	encoder hal.CommandEncoder

	recording bool
	finished  hal.CommandBuffer
}

var _ command.RawCommandBuffer = &CommandBuffer{}

func (b *CommandBuffer) Encoder() hal.CommandEncoder {
	return b.encoder
}

// HALCommandBuffer returns the most recently encoded command buffer, or nil if the buffer
// has not been ended since the last reset
func (b *CommandBuffer) HALCommandBuffer() hal.CommandBuffer {
	return b.finished
}

func (b *CommandBuffer) Begin(flags command.Flags, inheritance command.InheritanceInfo) error {
	if inheritance.Subpass != nil || inheritance.Framebuffer != nil {
		return errors.Wrap(command.ErrSecondaryUnsupported, "render pass inheritance")
	}
	if b.recording {
		return errors.AssertionFailedf("command buffer %q is already recording", b.label)
	}

	b.release()

	if err := b.encoder.BeginEncoding(b.label); err != nil {
		return errors.Wrapf(err, "begin encoding %q", b.label)
	}
	b.recording = true
	return nil
}

func (b *CommandBuffer) End() error {
	if !b.recording {
		return errors.AssertionFailedf("command buffer %q is not recording", b.label)
	}

	b.recording = false
	cmdBuf, err := b.encoder.EndEncoding()
	if err != nil {
		return errors.Wrapf(err, "end encoding %q", b.label)
	}
	b.finished = cmdBuf
	return nil
}

// release drops any in-flight encoding and hands the last encoded buffer back to the encoder,
// leaving the encoder ready for BeginEncoding
func (b *CommandBuffer) release() {
	if b.recording {
		b.encoder.DiscardEncoding()
		b.recording = false
	}
	if b.finished != nil {
		b.encoder.ResetAll([]hal.CommandBuffer{b.finished})
		b.finished = nil
	}
}

// destroy releases the buffer and the encoder behind it
func (b *CommandBuffer) destroy() {
	b.release()
	b.encoder.Destroy()
}
