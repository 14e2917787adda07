package heap

import "github.com/cockroachdb/errors"

var ErrOutOfHeapMemory = errors.New("out of heap memory")
var ErrOutOfDescriptors = errors.New("out of descriptor heap slots")
var ErrOutOfPoolMemory = errors.New("out of descriptor pool memory")
var ErrIncompatibleLayout = errors.New("descriptor set layout is incompatible with this pool")
var ErrUnknownAllocation = errors.New("allocation does not belong to this heap")
