package wgpu

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/queue"
	"github.com/gogpu/wgpu/hal"
)

// RawQueue implements queue.RawQueue over a hal.Queue. The hal queue numbers its submissions;
// RawQueue remembers the latest one so WaitIdle can return early once it has completed.
type RawQueue struct {
	device         hal.Device
	queue          hal.Queue
	lastSubmission uint64
}

var _ queue.RawQueue[*CommandBuffer] = &RawQueue{}

func NewRawQueue(device hal.Device, q hal.Queue) *RawQueue {
	return &RawQueue{
		device: device,
		queue:  q,
	}
}

func (q *RawQueue) Submit(submission queue.RawSubmission[*CommandBuffer]) error {
	cmdBufs := make([]hal.CommandBuffer, 0, len(submission.CommandBuffers))
	for _, buffer := range submission.CommandBuffers {
		if buffer.finished == nil {
			return errors.AssertionFailedf("command buffer %q has not been encoded", buffer.label)
		}
		cmdBufs = append(cmdBufs, buffer.finished)
	}

	index, err := q.queue.Submit(cmdBufs)
	if err != nil {
		return err
	}
	q.lastSubmission = index
	return nil
}

// LastSubmission returns the index of the most recent submission, or 0 before the first one
func (q *RawQueue) LastSubmission() uint64 {
	return q.lastSubmission
}

// Completed reports whether the GPU has finished every submission made through this queue
func (q *RawQueue) Completed() bool {
	return q.queue.PollCompleted() >= q.lastSubmission
}

func (q *RawQueue) WaitIdle() error {
	if q.Completed() {
		return nil
	}

	return errors.Wrapf(q.device.WaitIdle(), "wait for submission %d", q.lastSubmission)
}
