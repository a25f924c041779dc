package bitpack

import (
	"fmt"

	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/errs"
)

// Buffer is a fixed-width, random-access bit reader over a byte slice
// interpreted as a sequence of 16-bit code units (spec §4.1).
//
// A Buffer never allocates after construction; Get, Count, and Pos0 read
// directly from the backing slice.
type Buffer struct {
	data   []byte
	engine endian.EndianEngine
}

// NewBuffer wraps data as a Buffer. len(data) must be even; an odd trailing
// byte is ignored (the final partial code unit is simply unreadable).
func NewBuffer(data []byte, engine endian.EndianEngine) *Buffer {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Buffer{data: data, engine: engine}
}

// Bytes returns the backing byte slice. The caller must not modify it.
func (b *Buffer) Bytes() []byte { return b.data }

// NumUnits returns the number of complete 16-bit code units in the buffer.
func (b *Buffer) NumUnits() int { return len(b.data) / 2 }

// NumBits returns the number of addressable bits in the buffer.
func (b *Buffer) NumBits() uint32 { return uint32(b.NumUnits()) * 16 }

func (b *Buffer) unitAt(i int) uint16 {
	return b.engine.Uint16(b.data[i*2 : i*2+2])
}

// Get returns the n bits (1<=n<=31) starting at absolute bit position p,
// MSB-first within each code unit and concatenated across units.
func (b *Buffer) Get(p, n uint32) (uint32, error) {
	if n < 1 || n > 31 {
		return 0, fmt.Errorf("bitpack: Get width %d out of [1,31]: %w", n, errs.ErrOutOfRange)
	}
	if p+n > b.NumBits() {
		return 0, fmt.Errorf("bitpack: Get(%d,%d) exceeds %d addressable bits: %w", p, n, b.NumBits(), errs.ErrOutOfRange)
	}

	var v uint32
	remaining := n
	pos := p
	for remaining > 0 {
		unitIdx := pos / 16
		bitInUnit := pos % 16
		avail := 16 - bitInUnit
		take := avail
		if remaining < take {
			take = remaining
		}

		unit := b.unitAt(int(unitIdx))
		shift := avail - take
		mask := uint16(1)<<take - 1
		bits := (unit >> shift) & mask

		v = (v << take) | uint32(bits)
		pos += take
		remaining -= take
	}

	return v, nil
}

// Count returns the popcount of bits [p, p+n).
func (b *Buffer) Count(p, n uint32) (uint32, error) {
	if p+n > b.NumBits() {
		return 0, fmt.Errorf("bitpack: Count(%d,%d) exceeds %d addressable bits: %w", p, n, b.NumBits(), errs.ErrOutOfRange)
	}

	var total uint32
	remaining := n
	pos := p
	for remaining > 0 {
		unitIdx := pos / 16
		bitInUnit := pos % 16
		avail := 16 - bitInUnit
		take := avail
		if remaining < take {
			take = remaining
		}

		unit := b.unitAt(int(unitIdx))
		shift := avail - take
		mask := uint16(1)<<take - 1
		bits := (unit >> shift) & mask

		total += uint32(popcount16(bits))
		pos += take
		remaining -= take
	}

	return total, nil
}

// Pos0 returns the absolute bit index of the n-th zero bit on or after bit
// i. n must be >=1, except for the tie-break case n==0 which returns i
// itself (spec §4.1).
//
// It walks in 16-bit strides, using the popcount table to skip whole units
// whose zero-count can't satisfy the remaining budget, then scans bit by
// bit within the unit that contains the answer.
func (b *Buffer) Pos0(i, n uint32) (uint32, error) {
	if n == 0 {
		return i, nil
	}
	if i >= b.NumBits() {
		return 0, fmt.Errorf("bitpack: Pos0 start %d exceeds %d addressable bits: %w", i, b.NumBits(), errs.ErrOutOfRange)
	}

	remaining := n
	unitIdx := i / 16
	bitInUnit := i % 16
	numUnits := uint32(b.NumUnits())

	for unitIdx < numUnits {
		unit := b.unitAt(int(unitIdx))

		if bitInUnit == 0 {
			zeros := uint32(16 - popcount16(unit))
			if zeros < remaining {
				remaining -= zeros
				unitIdx++
				continue
			}
		}

		for bi := bitInUnit; bi < 16; bi++ {
			shift := 15 - bi
			if (unit>>shift)&1 == 0 {
				remaining--
				if remaining == 0 {
					return unitIdx*16 + bi, nil
				}
			}
		}

		unitIdx++
		bitInUnit = 0
	}

	return 0, fmt.Errorf("bitpack: Pos0(%d,%d) ran past end of buffer: %w", i, n, errs.ErrIterationBudget)
}
