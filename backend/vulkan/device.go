package vulkan

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

// Device is the part of core1_0.Device that command pools need. A core1_0.Device satisfies it.
type Device interface {
	CreateCommandPool(allocationCallbacks *driver.AllocationCallbacks, o core1_0.CommandPoolCreateInfo) (core1_0.CommandPool, common.VkResult, error)
	AllocateCommandBuffers(o core1_0.CommandBufferAllocateInfo) ([]core1_0.CommandBuffer, common.VkResult, error)
	FreeCommandBuffers(buffers []core1_0.CommandBuffer)
}

// Queue is the part of core1_0.Queue that submission needs. A core1_0.Queue satisfies it.
type Queue interface {
	Submit(fence core1_0.Fence, o []core1_0.SubmitInfo) (common.VkResult, error)
	WaitIdle() (common.VkResult, error)
}
