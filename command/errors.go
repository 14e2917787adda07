package command

import "github.com/cockroachdb/errors"

var ErrCapabilityUnsupported = errors.New("capability unsupported")
var ErrStaleCommandBuffer = errors.New("command buffer belongs to a pool generation that has been reset")
var ErrAlreadySubmitted = errors.New("one-shot command buffer was already submitted")
var ErrNotRecording = errors.New("command buffer is not recording")
var ErrSecondaryUnsupported = errors.New("backend does not support secondary command buffers")
var ErrInvalidLevel = errors.New("command buffer level is invalid for this operation")
