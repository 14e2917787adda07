package wgpu

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/exp/slices"
)

// CommandPool implements command.RawCommandPool over a hal.Device. WebGPU has no pool object,
// so the pool owns one command encoder per buffer and resets them together with ResetAll.
// Free destroys the encoders. Secondary command buffers are not supported.
type CommandPool struct {
	device  hal.Device
	label   string
	buffers []*CommandBuffer
}

var _ command.RawCommandPool[*CommandBuffer] = &CommandPool{}

func NewCommandPool(device hal.Device, label string) *CommandPool {
	return &CommandPool{
		device: device,
		label:  label,
	}
}

func (p *CommandPool) Reset() error {
	for _, buffer := range p.buffers {
		buffer.release()
	}
	return nil
}

func (p *CommandPool) Allocate(count int, level command.Level) ([]*CommandBuffer, error) {
	if level != command.LevelPrimary {
		return nil, errors.Wrapf(command.ErrSecondaryUnsupported, "allocate %s buffers", level)
	}

	buffers := make([]*CommandBuffer, 0, count)
	for i := 0; i < count; i++ {
		label := fmt.Sprintf("%s-%d", p.label, len(p.buffers)+i)
		encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
		if err != nil {
			for _, buffer := range buffers {
				buffer.destroy()
			}
			return nil, errors.Wrapf(err, "create command encoder %q", label)
		}

		buffers = append(buffers, &CommandBuffer{
			label:   label,
			encoder: encoder,
		})
	}

	p.buffers = append(p.buffers, buffers...)
	return buffers, nil
}

func (p *CommandPool) Free(buffers []*CommandBuffer) {
	for _, buffer := range buffers {
		buffer.destroy()

		index := slices.Index(p.buffers, buffer)
		if index >= 0 {
			p.buffers = slices.Delete(p.buffers, index, index+1)
		}
	}
}
