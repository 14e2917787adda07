package command

import "github.com/cockroachdb/errors"

// Submit is a finished command buffer, ready to be handed to a queue or executed from a primary
// buffer. A OneShot submit can be consumed once; a MultiShot submit any number of times. Either
// kind stops being usable when its pool is reset.
type Submit[B RawCommandBuffer] struct {
	pool       *CommandPool[B]
	level      Level
	index      int
	generation uint64

	shot       Shot
	flags      Flags
	capability Capability
	submitted  bool
}

func (s *Submit[B]) Level() Level           { return s.level }
func (s *Submit[B]) Shot() Shot             { return s.shot }
func (s *Submit[B]) Flags() Flags           { return s.flags }
func (s *Submit[B]) Capability() Capability { return s.capability }

// Submitted returns true once the submit has been consumed at least once
func (s *Submit[B]) Submitted() bool { return s.submitted }

// Validate returns the error Consume would return, without consuming the submit
func (s *Submit[B]) Validate() error {
	s.pool.checkReleased()

	if s.generation != s.pool.generation {
		return ErrStaleCommandBuffer
	}
	if s.shot == OneShot && s.submitted {
		return errors.Wrapf(ErrAlreadySubmitted, "%s command buffer %d", s.level, s.index)
	}

	return nil
}

// Consume returns the backend buffer to submit and marks the submit as used
func (s *Submit[B]) Consume() (B, error) {
	err := s.Validate()
	if err != nil {
		var zero B
		return zero, err
	}

	s.submitted = true
	return s.pool.bufferAt(s.level, s.index), nil
}

// ValidateBatch validates every submit of a batch that is about to be consumed as a whole. A
// one-shot submit that appears more than once fails with ErrAlreadySubmitted, since only its
// first appearance could be consumed.
func ValidateBatch[B RawCommandBuffer](submits []*Submit[B]) error {
	seen := make(map[*Submit[B]]struct{}, len(submits))
	for i, submit := range submits {
		err := submit.Validate()
		if err != nil {
			return errors.Wrapf(err, "submit %d", i)
		}

		if submit.shot != OneShot {
			continue
		}
		if _, ok := seen[submit]; ok {
			return errors.Wrapf(ErrAlreadySubmitted, "submit %d is a one-shot %s command buffer listed twice", i, submit.level)
		}
		seen[submit] = struct{}{}
	}

	return nil
}
