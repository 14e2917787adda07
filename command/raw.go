package command

//go:generate mockgen -source raw.go -destination ./mocks/raw.go -package mocks

// RenderPass is a backend render pass handle. The core never inspects it.
type RenderPass any

// Framebuffer is a backend framebuffer handle. The core never inspects it.
type Framebuffer any

// Subpass identifies one subpass of a render pass
type Subpass struct {
	Pass  RenderPass
	Index int
}

// InheritanceInfo is the state a secondary command buffer inherits from the primary buffer that
// executes it. Primary command buffers are always begun with the zero value.
type InheritanceInfo struct {
	// Subpass is set for buffers recorded inside a render pass
	Subpass              *Subpass
	Framebuffer          Framebuffer
	OcclusionQueryEnable bool
}

// RawCommandBuffer is a backend command buffer. Commands themselves are recorded through the
// backend type directly; the core only drives the begin/end lifecycle.
type RawCommandBuffer interface {
	Begin(flags Flags, inheritance InheritanceInfo) error
	End() error
}

// SecondaryExecutor is implemented by backend command buffers that can execute secondary
// command buffers from a primary one
type SecondaryExecutor[B RawCommandBuffer] interface {
	ExecuteCommands(buffers []B) error
}

// RawCommandPool is a backend command pool. Buffers returned by Allocate belong to the pool
// until they are passed to Free.
type RawCommandPool[B RawCommandBuffer] interface {
	// Reset returns every buffer allocated from the pool to the initial state
	Reset() error
	// Allocate creates exactly count buffers of the requested level
	Allocate(count int, level Level) ([]B, error)
	Free(buffers []B)
}
