package vulkan

import (
	"github.com/gfx-rs/gfx-sub004/queue"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// RawQueue implements queue.RawQueue over a vkQueue
type RawQueue struct {
	queue Queue
}

var _ queue.RawQueue[*CommandBuffer] = &RawQueue{}

func NewRawQueue(q Queue) *RawQueue {
	return &RawQueue{queue: q}
}

func (q *RawQueue) Submit(submission queue.RawSubmission[*CommandBuffer]) error {
	vkBuffers := make([]core1_0.CommandBuffer, 0, len(submission.CommandBuffers))
	for _, buffer := range submission.CommandBuffers {
		vkBuffers = append(vkBuffers, buffer.buffer)
	}

	_, err := q.queue.Submit(nil, []core1_0.SubmitInfo{
		{CommandBuffers: vkBuffers},
	})
	return err
}

func (q *RawQueue) WaitIdle() error {
	_, err := q.queue.WaitIdle()
	return err
}
