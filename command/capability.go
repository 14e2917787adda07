package command

// Capability is the set of operations a command buffer records, and therefore the set a queue
// must offer to run it. Capabilities are ordered by inclusion: General covers everything,
// Graphics and Compute each cover Transfer.
type Capability uint8

const (
	CapabilityTransfer Capability = Capability(opTransfer)
	CapabilityGraphics Capability = Capability(opGraphics | opTransfer)
	CapabilityCompute  Capability = Capability(opCompute | opTransfer)
	CapabilityGeneral  Capability = Capability(opGraphics | opCompute | opTransfer)
)

const (
	opTransfer uint8 = 1 << iota
	opGraphics
	opCompute
)

// Supports returns true if every operation allowed by other is also allowed by c
func (c Capability) Supports(other Capability) bool {
	return c&other == other
}

// Upper returns the smallest capability that supports both c and other
func (c Capability) Upper(other Capability) Capability {
	return c | other
}

// SupportedBy returns true if a queue of type queueType can run work of capability c
func (c Capability) SupportedBy(queueType QueueType) bool {
	return queueType.Capability().Supports(c)
}

func (c Capability) String() string {
	switch c {
	case CapabilityTransfer:
		return "Transfer"
	case CapabilityGraphics:
		return "Graphics"
	case CapabilityCompute:
		return "Compute"
	case CapabilityGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// QueueType is the run-time kind of a queue family
type QueueType int

const (
	QueueTypeGeneral QueueType = iota
	QueueTypeGraphics
	QueueTypeCompute
	QueueTypeTransfer
)

// Capability returns the widest capability a queue of this type can run
func (t QueueType) Capability() Capability {
	switch t {
	case QueueTypeGeneral:
		return CapabilityGeneral
	case QueueTypeGraphics:
		return CapabilityGraphics
	case QueueTypeCompute:
		return CapabilityCompute
	default:
		return CapabilityTransfer
	}
}

// SupportsGraphics returns true if the queue type can run graphics work
func (t QueueType) SupportsGraphics() bool {
	return t == QueueTypeGeneral || t == QueueTypeGraphics
}

// SupportsCompute returns true if the queue type can run compute work
func (t QueueType) SupportsCompute() bool {
	return t == QueueTypeGeneral || t == QueueTypeCompute
}

func (t QueueType) String() string {
	switch t {
	case QueueTypeGeneral:
		return "General"
	case QueueTypeGraphics:
		return "Graphics"
	case QueueTypeCompute:
		return "Compute"
	case QueueTypeTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}
