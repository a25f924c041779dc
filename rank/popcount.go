package rank

import (
	"fmt"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/format"
)

// PopcountDirectory is the classic L1/L2 cumulative-popcount rank
// directory (spec §4.2, "Popcount layout").
type PopcountDirectory struct {
	trie *bitpack.Buffer
	dir  *bitpack.Buffer

	numBits uint32
	l1, l2  uint32

	l1Width uint32
	l2Width uint32

	numL1   uint32
	l2PerL1 uint32

	l1Offset uint32 // bit offset of the L1 table within dir
	l2Offset uint32 // bit offset of the L2 table within dir
}

// BuildPopcountDirectory scans trie (numBits bits long) and returns the
// encoded directory bytes for the popcount layout.
func BuildPopcountDirectory(trie *bitpack.Buffer, numBits, l1, l2 uint32) ([]byte, error) {
	if l1 == 0 || l2 == 0 || l1%l2 != 0 {
		return nil, fmt.Errorf("rank: L1=%d L2=%d: %w", l1, l2, errs.ErrBlockSize)
	}

	l1Width := bitWidth(numBits + 1)
	l2Width := bitWidth(l1 + 1)
	numL1 := (numBits + l1 - 1) / l1

	w := bitpack.NewWriter(endian.GetLittleEndianEngine(), 0)

	// The L1 table is written whole, then the L2 table, matching the
	// l1Offset/l2Offset layout NewPopcountDirectory mounts.
	l1Vals := make([]uint32, 0, numL1)
	var l2Vals []uint32

	var cumulative uint32
	for b := uint32(0); b < numL1; b++ {
		l1Vals = append(l1Vals, cumulative)

		blockStart := b * l1
		blockEnd := blockStart + l1
		if blockEnd > numBits {
			blockEnd = numBits
		}

		var l2Cumulative uint32
		for s := blockStart; s < blockEnd; s += l2 {
			l2Vals = append(l2Vals, l2Cumulative)

			segEnd := s + l2
			if segEnd > blockEnd {
				segEnd = blockEnd
			}

			ones, err := trie.Count(s, segEnd-s)
			if err != nil {
				return nil, fmt.Errorf("rank: building L2 table: %w", err)
			}

			l2Cumulative += ones
		}
		// Pad remaining L2 slots of a short final block so the table has a
		// fixed l2PerL1 stride per L1 block.
		for s := blockEnd; s < blockStart+l1; s += l2 {
			l2Vals = append(l2Vals, l2Cumulative)
		}

		cumulative += l2Cumulative
	}

	for _, v := range l1Vals {
		w.Write(v, l1Width)
	}
	for _, v := range l2Vals {
		w.Write(v, l2Width)
	}

	return w.Bytes(), nil
}

// NewPopcountDirectory mounts previously built directory bytes (via
// bitpack.NewBuffer) against the trie's LOUDS stream.
func NewPopcountDirectory(dir, trie *bitpack.Buffer, numBits, l1, l2 uint32) (*PopcountDirectory, error) {
	if l1 == 0 || l2 == 0 || l1%l2 != 0 {
		return nil, fmt.Errorf("rank: L1=%d L2=%d: %w", l1, l2, errs.ErrBlockSize)
	}

	l1Width := bitWidth(numBits + 1)
	l2Width := bitWidth(l1 + 1)
	numL1 := (numBits + l1 - 1) / l1
	l2PerL1 := l1 / l2

	return &PopcountDirectory{
		trie:     trie,
		dir:      dir,
		numBits:  numBits,
		l1:       l1,
		l2:       l2,
		l1Width:  l1Width,
		l2Width:  l2Width,
		numL1:    numL1,
		l2PerL1:  l2PerL1,
		l1Offset: 0,
		l2Offset: numL1 * l1Width,
	}, nil
}

// Layout reports format.PopcountLayout.
func (d *PopcountDirectory) Layout() format.RankLayout { return format.PopcountLayout }

func (d *PopcountDirectory) l1Prefix(block uint32) (uint32, error) {
	v, err := d.dir.Get(d.l1Offset+block*d.l1Width, d.l1Width)
	if err != nil {
		return 0, fmt.Errorf("rank: L1 table read: %w", err)
	}

	return v, nil
}

func (d *PopcountDirectory) l2Prefix(block, seg uint32) (uint32, error) {
	stride := d.l2Width * d.l2PerL1
	v, err := d.dir.Get(d.l2Offset+block*stride+seg*d.l2Width, d.l2Width)
	if err != nil {
		return 0, fmt.Errorf("rank: L2 table read: %w", err)
	}

	return v, nil
}

// Rank returns the number of `which`-bits in [0, x].
func (d *PopcountDirectory) Rank(which Which, x uint32) (uint32, error) {
	if x >= d.numBits {
		return 0, fmt.Errorf("rank: Rank(%d,%d) exceeds %d bits: %w", which, x, d.numBits, errs.ErrOutOfRange)
	}

	block := x / d.l1
	seg := (x % d.l1) / d.l2

	l1p, err := d.l1Prefix(block)
	if err != nil {
		return 0, err
	}
	l2p, err := d.l2Prefix(block, seg)
	if err != nil {
		return 0, err
	}

	partialStart := block*d.l1 + seg*d.l2
	ones, err := d.trie.Count(partialStart, x-partialStart+1)
	if err != nil {
		return 0, fmt.Errorf("rank: partial popcount: %w", err)
	}

	rank1 := l1p + l2p + ones
	if which == One {
		return rank1, nil
	}

	return x + 1 - rank1, nil
}

// Select returns the position of the y-th `which`-bit (y >= 1), found by
// binary search over Rank.
func (d *PopcountDirectory) Select(which Which, y uint32) (uint32, error) {
	if y == 0 {
		return 0, fmt.Errorf("rank: Select(%d,0) is undefined: %w", which, errs.ErrOutOfRange)
	}

	total, err := d.Rank(which, d.numBits-1)
	if err != nil {
		return 0, err
	}
	if y > total {
		return 0, fmt.Errorf("rank: Select(%d,%d) exceeds %d %d-bits: %w", which, y, total, which, errs.ErrOutOfRange)
	}

	lo, hi := uint32(0), d.numBits-1
	for lo < hi {
		mid := lo + (hi-lo)/2

		r, err := d.Rank(which, mid)
		if err != nil {
			return 0, err
		}

		if r >= y {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}
