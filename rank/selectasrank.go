package rank

import (
	"fmt"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/format"
)

// SelectAsRankDirectory stores the absolute position of every L2-th zero
// of the trie's LOUDS stream, converting select(0, y) into an O(1)
// directory lookup followed by a short Pos0 walk (spec §4.2, "Select-as-rank
// layout"). rank(1, ·) and select(1, ·) are not required by the trie under
// this layout and return errs.ErrOutOfRange (spec §9, open question 1: the
// legacy source silently treats select(which,·) as select(0,·) regardless
// of which; this implementation instead rejects the unsupported case
// explicitly).
//
// Entry k (0-indexed) stores the absolute position of the ((k+1)*L2)-th
// zero bit, 1-indexed. Entry k therefore marks the end of block k, where
// block 0 covers 1-indexed zeros [1, L2], block 1 covers [L2+1, 2*L2], etc.
type SelectAsRankDirectory struct {
	trie *bitpack.Buffer
	dir  *bitpack.Buffer

	numBits uint32
	l2      uint32

	entryWidth uint32
	numEntries uint32
}

// BuildSelectAsRankDirectory scans trie (numBits bits long) and returns the
// encoded directory bytes for the select-as-rank layout.
func BuildSelectAsRankDirectory(trie *bitpack.Buffer, numBits, l2 uint32) ([]byte, error) {
	if l2 == 0 {
		return nil, fmt.Errorf("rank: L2=%d: %w", l2, errs.ErrBlockSize)
	}

	entryWidth := bitWidth(numBits + 1)
	w := bitpack.NewWriter(endian.GetLittleEndianEngine(), 0)

	pos := uint32(0)
	for {
		n, err := trie.Pos0(pos, l2)
		if err != nil {
			break
		}

		w.Write(n, entryWidth)
		pos = n + 1
	}

	return w.Bytes(), nil
}

// NewSelectAsRankDirectory mounts previously built directory bytes against
// the trie's LOUDS stream.
func NewSelectAsRankDirectory(dir, trie *bitpack.Buffer, numBits, l2 uint32) (*SelectAsRankDirectory, error) {
	if l2 == 0 {
		return nil, fmt.Errorf("rank: L2=%d: %w", l2, errs.ErrBlockSize)
	}

	entryWidth := bitWidth(numBits + 1)

	ones, err := trie.Count(0, numBits)
	if err != nil {
		return nil, fmt.Errorf("rank: counting ones to size the select-as-rank directory: %w", err)
	}
	zeroCount := numBits - ones
	numEntries := zeroCount / l2

	return &SelectAsRankDirectory{
		trie:       trie,
		dir:        dir,
		numBits:    numBits,
		l2:         l2,
		entryWidth: entryWidth,
		numEntries: numEntries,
	}, nil
}

// Layout reports format.SelectAsRankLayout.
func (d *SelectAsRankDirectory) Layout() format.RankLayout { return format.SelectAsRankLayout }

// entryAt returns the stored position of the ((k+1)*l2)-th zero (1-indexed).
func (d *SelectAsRankDirectory) entryAt(k uint32) (uint32, error) {
	v, err := d.dir.Get(k*d.entryWidth, d.entryWidth)
	if err != nil {
		return 0, fmt.Errorf("rank: select-as-rank entry read: %w", err)
	}

	return v, nil
}

// Select returns the position of the y-th zero bit (y >= 1). which is
// ignored by the legacy layout's own select(0,·) path (spec §9, open
// question 1), except that One is rejected outright here rather than
// silently degraded to a zero-select.
func (d *SelectAsRankDirectory) Select(which Which, y uint32) (uint32, error) {
	if which == One {
		return 0, fmt.Errorf("rank: select(1,·) is unsupported under the select-as-rank layout: %w", errs.ErrOutOfRange)
	}
	if y == 0 {
		return 0, fmt.Errorf("rank: Select(0,0) is undefined: %w", errs.ErrOutOfRange)
	}

	block := (y - 1) / d.l2
	offset := (y-1)%d.l2 + 1 // 1-indexed offset within the block, [1, l2]

	if block == 0 {
		return d.trie.Pos0(0, offset)
	}

	base, err := d.entryAt(block - 1)
	if err != nil {
		return 0, err
	}

	return d.trie.Pos0(base+1, offset)
}

// Rank returns the number of zero bits in [0, x] (rank(1,·) is
// unimplemented under this layout). It locates the latest block boundary
// at or before x by binary search, then finishes with a partial popcount
// on the trie blob.
func (d *SelectAsRankDirectory) Rank(which Which, x uint32) (uint32, error) {
	if which == One {
		return 0, fmt.Errorf("rank: rank(1,·) is unimplemented under the select-as-rank layout: %w", errs.ErrOutOfRange)
	}
	if x >= d.numBits {
		return 0, fmt.Errorf("rank: Rank(0,%d) exceeds %d bits: %w", x, d.numBits, errs.ErrOutOfRange)
	}
	if d.numEntries == 0 {
		return d.rankZeroFromScratch(x)
	}

	first, err := d.entryAt(0)
	if err != nil {
		return 0, err
	}
	if x < first {
		return d.rankZeroFromScratch(x)
	}

	lo, hi := uint32(0), d.numEntries-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2

		v, err := d.entryAt(mid)
		if err != nil {
			return 0, err
		}

		if v <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	base, err := d.entryAt(lo)
	if err != nil {
		return 0, err
	}

	zerosAtBase := (lo + 1) * d.l2
	if base == x {
		return zerosAtBase, nil
	}

	ones, err := d.trie.Count(base+1, x-base)
	if err != nil {
		return 0, err
	}

	return zerosAtBase + (x - base) - ones, nil
}

func (d *SelectAsRankDirectory) rankZeroFromScratch(x uint32) (uint32, error) {
	ones, err := d.trie.Count(0, x+1)
	if err != nil {
		return 0, err
	}

	return (x + 1) - ones, nil
}
