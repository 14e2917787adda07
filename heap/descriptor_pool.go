package heap

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gfx-rs/gfx-sub004/internal/utils"
	"github.com/gfx-rs/gfx-sub004/memutils"
	"github.com/gfx-rs/gfx-sub004/memutils/rangealloc"
)

// DescriptorSetLayout describes the argument buffer encoding of a descriptor set
type DescriptorSetLayout struct {
	// EncodedLength is the number of bytes one set of this layout occupies in an argument buffer
	EncodedLength uint64
}

// DescriptorSet is a set allocated from a DescriptorPool, occupying
// [Offset, Offset+Layout.EncodedLength) of the pool's argument buffer
type DescriptorSet struct {
	Offset uint64
	Layout DescriptorSetLayout
}

// DescriptorPool carves descriptor sets out of one argument buffer
type DescriptorPool struct {
	logger    *slog.Logger
	allocator *rangealloc.RangeAllocator[uint64]
}

func NewDescriptorPool(logger *slog.Logger, size uint64) (*DescriptorPool, error) {
	if size == 0 {
		return nil, errors.Wrap(memutils.ZeroSizeError, "descriptor pool size is 0")
	}

	return &DescriptorPool{
		logger:    utils.LoggerOrDiscard(logger),
		allocator: rangealloc.New(rangealloc.Range[uint64]{Start: 0, End: size}),
	}, nil
}

// AllocateSet reserves room for one set of the given layout
func (p *DescriptorPool) AllocateSet(layout DescriptorSetLayout) (DescriptorSet, error) {
	p.logger.Debug("DescriptorPool::AllocateSet")

	if layout.EncodedLength == 0 {
		return DescriptorSet{}, errors.Wrap(ErrIncompatibleLayout, "layout has no argument buffer encoding")
	}

	rng, ok := p.allocator.AllocateRange(layout.EncodedLength)
	if !ok {
		return DescriptorSet{}, errors.Wrapf(ErrOutOfPoolMemory, "could not fit a %d byte set", layout.EncodedLength)
	}

	return DescriptorSet{
		Offset: rng.Start,
		Layout: layout,
	}, nil
}

// AllocateSets allocates one set per layout. If any allocation fails, the sets already allocated
// by this call are freed and the error is returned.
func (p *DescriptorPool) AllocateSets(layouts ...DescriptorSetLayout) ([]DescriptorSet, error) {
	p.logger.Debug("DescriptorPool::AllocateSets")

	sets := make([]DescriptorSet, 0, len(layouts))
	for _, layout := range layouts {
		set, err := p.AllocateSet(layout)
		if err != nil {
			p.FreeSets(sets...)
			return nil, err
		}

		sets = append(sets, set)
	}

	return sets, nil
}

// FreeSets returns sets to the pool
func (p *DescriptorPool) FreeSets(sets ...DescriptorSet) {
	p.logger.Debug("DescriptorPool::FreeSets")

	for _, set := range sets {
		p.allocator.FreeRange(rangealloc.NewRange(set.Offset, set.Layout.EncodedLength))
	}
}

// Reset frees every set at once
func (p *DescriptorPool) Reset() {
	p.logger.Debug("DescriptorPool::Reset")

	p.allocator.Reset()
}

// FreeBytes returns the number of unused bytes in the argument buffer
func (p *DescriptorPool) FreeBytes() uint64 {
	return p.allocator.SumFreeSize()
}
