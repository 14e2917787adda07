package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

// CommandPool implements command.RawCommandPool over a vkCommandPool
type CommandPool struct {
	device         Device
	pool           core1_0.CommandPool
	releaseOnReset bool
}

var _ command.RawCommandPool[*CommandBuffer] = &CommandPool{}

// NewCommandPool wraps an existing vkCommandPool. If releaseOnReset is set, Reset also returns
// the pool's memory to the system.
func NewCommandPool(device Device, pool core1_0.CommandPool, releaseOnReset bool) *CommandPool {
	return &CommandPool{
		device:         device,
		pool:           pool,
		releaseOnReset: releaseOnReset,
	}
}

// CreateCommandPool creates a vkCommandPool for the given queue family
func CreateCommandPool(device Device, allocationCallbacks *driver.AllocationCallbacks, queueFamilyIndex int, flags command.PoolCreateFlags) (*CommandPool, error) {
	var createFlags core1_0.CommandPoolCreateFlags
	if flags&command.PoolCreateTransient != 0 {
		createFlags |= core1_0.CommandPoolCreateTransient
	}
	if flags&command.PoolCreateResetIndividual != 0 {
		createFlags |= core1_0.CommandPoolCreateResetBuffer
	}

	pool, _, err := device.CreateCommandPool(allocationCallbacks, core1_0.CommandPoolCreateInfo{
		Flags:            createFlags,
		QueueFamilyIndex: queueFamilyIndex,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create command pool for queue family %d", queueFamilyIndex)
	}

	return NewCommandPool(device, pool, false), nil
}

// VulkanCommandPool returns the wrapped vkCommandPool
func (p *CommandPool) VulkanCommandPool() core1_0.CommandPool {
	return p.pool
}

func (p *CommandPool) Reset() error {
	var flags core1_0.CommandPoolResetFlags
	if p.releaseOnReset {
		flags = core1_0.CommandPoolResetReleaseResources
	}

	_, err := p.pool.Reset(flags)
	return err
}

func (p *CommandPool) Allocate(count int, level command.Level) ([]*CommandBuffer, error) {
	vkLevel := core1_0.CommandBufferLevelPrimary
	if level == command.LevelSecondary {
		vkLevel = core1_0.CommandBufferLevelSecondary
	}

	vkBuffers, _, err := p.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        p.pool,
		Level:              vkLevel,
		CommandBufferCount: count,
	})
	if err != nil {
		return nil, err
	}

	buffers := make([]*CommandBuffer, 0, len(vkBuffers))
	for _, vkBuffer := range vkBuffers {
		buffers = append(buffers, &CommandBuffer{buffer: vkBuffer})
	}

	return buffers, nil
}

func (p *CommandPool) Free(buffers []*CommandBuffer) {
	vkBuffers := make([]core1_0.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		vkBuffers = append(vkBuffers, buffer.buffer)
	}

	p.device.FreeCommandBuffers(vkBuffers)
}
