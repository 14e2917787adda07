package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// CommandBuffer implements command.RawCommandBuffer over a vkCommandBuffer. Commands are
// recorded through VulkanCommandBuffer.
type CommandBuffer struct {
	buffer core1_0.CommandBuffer
}

var _ command.RawCommandBuffer = &CommandBuffer{}
var _ command.SecondaryExecutor[*CommandBuffer] = &CommandBuffer{}

func (b *CommandBuffer) VulkanCommandBuffer() core1_0.CommandBuffer {
	return b.buffer
}

func usageFlags(flags command.Flags) core1_0.CommandBufferUsageFlags {
	var usage core1_0.CommandBufferUsageFlags
	if flags&command.FlagOneTimeSubmit != 0 {
		usage |= core1_0.CommandBufferUsageOneTimeSubmit
	}
	if flags&command.FlagRenderPassContinue != 0 {
		usage |= core1_0.CommandBufferUsageRenderPassContinue
	}
	if flags&command.FlagSimultaneousUse != 0 {
		usage |= core1_0.CommandBufferUsageSimultaneousUse
	}
	return usage
}

func inheritanceInfo(inheritance command.InheritanceInfo) (*core1_0.CommandBufferInheritanceInfo, error) {
	if inheritance.Subpass == nil && inheritance.Framebuffer == nil && !inheritance.OcclusionQueryEnable {
		return nil, nil
	}

	info := &core1_0.CommandBufferInheritanceInfo{
		OcclusionQueryEnable: inheritance.OcclusionQueryEnable,
	}

	if inheritance.Subpass != nil {
		renderPass, ok := inheritance.Subpass.Pass.(core1_0.RenderPass)
		if !ok {
			return nil, errors.AssertionFailedf("subpass render pass is %T, not a core1_0.RenderPass", inheritance.Subpass.Pass)
		}

		info.RenderPass = renderPass
		info.Subpass = inheritance.Subpass.Index
	}

	if inheritance.Framebuffer != nil {
		framebuffer, ok := inheritance.Framebuffer.(core1_0.Framebuffer)
		if !ok {
			return nil, errors.AssertionFailedf("framebuffer is %T, not a core1_0.Framebuffer", inheritance.Framebuffer)
		}

		info.Framebuffer = framebuffer
	}

	return info, nil
}

func (b *CommandBuffer) Begin(flags command.Flags, inheritance command.InheritanceInfo) error {
	info, err := inheritanceInfo(inheritance)
	if err != nil {
		return err
	}

	_, err = b.buffer.Begin(core1_0.CommandBufferBeginInfo{
		Flags:           usageFlags(flags),
		InheritanceInfo: info,
	})
	return err
}

func (b *CommandBuffer) End() error {
	_, err := b.buffer.End()
	return err
}

func (b *CommandBuffer) ExecuteCommands(buffers []*CommandBuffer) error {
	vkBuffers := make([]core1_0.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		vkBuffers = append(vkBuffers, buffer.buffer)
	}

	b.buffer.CmdExecuteCommands(vkBuffers)
	return nil
}
