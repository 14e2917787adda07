package queue

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
	"github.com/gfx-rs/gfx-sub004/internal/utils"
)

//go:generate mockgen -source queue.go -destination ./mocks/queue.go -package mocks

// RawQueue is a backend queue
type RawQueue[B command.RawCommandBuffer] interface {
	Submit(submission RawSubmission[B]) error
	// WaitIdle blocks until every submission made to the queue has finished executing
	WaitIdle() error
}

// Queue submits finished command buffers to a backend queue of a known type. Submissions whose
// capability the queue type cannot run are rejected before anything reaches the backend.
//
// A command pool must not be reset while buffers acquired from it are still executing. WaitIdle,
// or a backend fence, is how callers find out they are done.
type Queue[B command.RawCommandBuffer] struct {
	logger    *slog.Logger
	raw       RawQueue[B]
	queueType command.QueueType
}

func New[B command.RawCommandBuffer](logger *slog.Logger, raw RawQueue[B], queueType command.QueueType) *Queue[B] {
	return &Queue[B]{
		logger:    utils.LoggerOrDiscard(logger),
		raw:       raw,
		queueType: queueType,
	}
}

func (q *Queue[B]) Type() command.QueueType {
	return q.queueType
}

// Submit hands every command buffer in submission to the backend. One-shot submits are consumed,
// and submitting them again fails with command.ErrAlreadySubmitted.
func (q *Queue[B]) Submit(submission *Submission[B]) error {
	q.logger.Debug("Queue::Submit")

	if !submission.Capability().SupportedBy(q.queueType) {
		return errors.Wrapf(command.ErrCapabilityUnsupported, "a %s queue cannot run a %s submission", q.queueType, submission.Capability())
	}

	raw, err := submission.toRaw()
	if err != nil {
		return err
	}

	err = q.raw.Submit(raw)
	if err != nil {
		q.logger.LogAttrs(context.Background(), slog.LevelError, "queue submission failed",
			slog.String("queueType", q.queueType.String()),
			slog.Int("commandBuffers", len(raw.CommandBuffers)),
			slog.Any("error", err),
		)
		return errors.Wrap(err, "failed to submit to queue")
	}

	return nil
}

// WaitIdle blocks until the backend queue has finished all submitted work
func (q *Queue[B]) WaitIdle() error {
	q.logger.Debug("Queue::WaitIdle")

	return errors.Wrap(q.raw.WaitIdle(), "failed to wait for queue idle")
}
