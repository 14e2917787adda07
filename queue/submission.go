package queue

import (
	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/command"
)

// RawSubmission is the backend view of a Submission: the buffers to run, in order
type RawSubmission[B command.RawCommandBuffer] struct {
	CommandBuffers []B
}

// Submission collects finished primary command buffers to hand to a queue in one call. It starts
// out needing only transfer capability and is raised to cover every submit added to it.
type Submission[B command.RawCommandBuffer] struct {
	submits    []*command.Submit[B]
	capability command.Capability
}

func NewSubmission[B command.RawCommandBuffer]() *Submission[B] {
	return &Submission[B]{
		capability: command.CapabilityTransfer,
	}
}

// Add appends submits to the submission and returns it, raising the submission's capability to
// the smallest one that supports all of them
func (s *Submission[B]) Add(submits ...*command.Submit[B]) *Submission[B] {
	for _, submit := range submits {
		s.capability = s.capability.Upper(submit.Capability())
	}
	s.submits = append(s.submits, submits...)

	return s
}

// Promote raises the submission to capability, which must support the submission's current one
func (s *Submission[B]) Promote(capability command.Capability) error {
	if !capability.Supports(s.capability) {
		return errors.Wrapf(command.ErrCapabilityUnsupported, "cannot promote a %s submission to %s", s.capability, capability)
	}

	s.capability = capability
	return nil
}

// Capability returns the smallest capability a queue needs to run the submission
func (s *Submission[B]) Capability() command.Capability {
	return s.capability
}

// Len returns the number of submits in the submission
func (s *Submission[B]) Len() int {
	return len(s.submits)
}

func (s *Submission[B]) toRaw() (RawSubmission[B], error) {
	for i, submit := range s.submits {
		if submit.Level() != command.LevelPrimary {
			return RawSubmission[B]{}, errors.Wrapf(command.ErrInvalidLevel, "submit %d is a %s command buffer", i, submit.Level())
		}
	}

	err := command.ValidateBatch(s.submits)
	if err != nil {
		return RawSubmission[B]{}, err
	}

	raw := RawSubmission[B]{
		CommandBuffers: make([]B, 0, len(s.submits)),
	}
	for _, submit := range s.submits {
		buffer, err := submit.Consume()
		if err != nil {
			return RawSubmission[B]{}, err
		}
		raw.CommandBuffers = append(raw.CommandBuffers, buffer)
	}

	return raw, nil
}
