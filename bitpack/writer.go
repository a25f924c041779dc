package bitpack

import (
	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/internal/pool"
)

// Writer appends variable-width fields to a bit stream and yields the
// finished byte blob. Bit bookkeeping (the current top-of-stream position)
// is O(1): Writer tracks it as a plain counter rather than recomputing it
// from the buffer on every call.
type Writer struct {
	units  []uint16
	nbits  uint32
	engine endian.EndianEngine
}

// NewWriter creates a Writer with a capacity hint of unitsHint code units.
func NewWriter(engine endian.EndianEngine, unitsHint int) *Writer {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Writer{
		units:  make([]uint16, 0, unitsHint),
		engine: engine,
	}
}

// Pos returns the current bit position (== number of bits written so far).
func (w *Writer) Pos() uint32 { return w.nbits }

// Write appends the n low bits of v (1<=n<=31), MSB-first.
func (w *Writer) Write(v uint32, n uint32) {
	for n > 0 {
		unitIdx := int(w.nbits / 16)
		bitInUnit := w.nbits % 16
		for len(w.units) <= unitIdx {
			w.units = append(w.units, 0)
		}

		avail := 16 - bitInUnit
		take := avail
		if n < take {
			take = n
		}

		shift := n - take
		chunk := uint16((v >> shift) & (1<<take - 1))
		destShift := avail - take
		w.units[unitIdx] |= chunk << destShift

		w.nbits += take
		n -= take
	}
}

// Bytes materializes the finished bit stream as a byte slice. The trie and
// rank-directory blobs this produces can run into the tens of megabytes, so
// the intermediate growable buffer comes from the shared blob pool rather
// than a fresh allocation per Emit call.
func (w *Writer) Bytes() []byte {
	n := len(w.units) * 2

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.Grow(n)
	bb.SetLength(n)

	for i, u := range w.units {
		w.engine.PutUint16(bb.Slice(i*2, i*2+2), u)
	}

	out := make([]byte, n)
	copy(out, bb.Bytes())

	return out
}
