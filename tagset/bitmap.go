package tagset

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/internal/pool"
)

// GroupSize is the number of ordinals one group word covers.
const GroupSize = 16

// NumGroups is the number of groups the 16-bit header can select.
const NumGroups = 16

// MaxOrdinal is the exclusive upper bound of a representable ordinal set.
const MaxOrdinal = GroupSize * NumGroups

// EncodeBitmap serializes tags into the two-level bitmap byte encoding.
// Duplicate ordinals are folded; order of the input does not matter.
func EncodeBitmap(tags []int) ([]byte, error) {
	groupBits := make(map[int]uint16, len(tags))
	for _, k := range tags {
		if k < 0 || k >= MaxOrdinal {
			return nil, fmt.Errorf("tagset: ordinal %d out of [0,%d): %w", k, MaxOrdinal, errs.ErrAlphabet)
		}
		g, p := k/GroupSize, k%GroupSize
		groupBits[g] |= 1 << uint(15-p)
	}

	groups := make([]int, 0, len(groupBits))
	for g := range groupBits {
		groups = append(groups, g)
	}
	sort.Ints(groups)

	var header uint16
	for _, g := range groups {
		header |= 1 << uint(15-g)
	}

	out := make([]byte, 2+2*len(groups))
	binary.BigEndian.PutUint16(out[0:2], header)
	for i, g := range groups {
		binary.BigEndian.PutUint16(out[2+2*i:4+2*i], groupBits[g])
	}

	return out, nil
}

// DecodeBitmap is the inverse of EncodeBitmap. It returns errs.ErrBitmapHeader
// if the header's popcount disagrees with the number of group words present.
func DecodeBitmap(data []byte) ([]int, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("tagset: bitmap shorter than header: %w", errs.ErrBitmapHeader)
	}

	header := binary.BigEndian.Uint16(data[0:2])
	groupCount := bitpack.Popcount16(header)
	if len(data) != 2+2*groupCount {
		return nil, fmt.Errorf("tagset: header popcount %d disagrees with %d group words: %w",
			groupCount, (len(data)-2)/2, errs.ErrBitmapHeader)
	}

	scratch, cleanup := pool.GetIntSlice()
	defer cleanup()

	offset := 2
	for g := 0; g < NumGroups; g++ {
		bit := uint16(1) << uint(15-g)
		if header&bit == 0 {
			continue
		}

		word := binary.BigEndian.Uint16(data[offset : offset+2])
		offset += 2
		for p := 0; p < GroupSize; p++ {
			pbit := uint16(1) << uint(15-p)
			if word&pbit != 0 {
				*scratch = append(*scratch, GroupSize*g+p)
			}
		}
	}

	if len(*scratch) == 0 {
		return nil, nil
	}

	tags := make([]int, len(*scratch))
	copy(tags, *scratch)

	return tags, nil
}

// UpsertOrdinal ORs a single ordinal into an existing bitmap encoding,
// splicing a new group word into place if its group has no member yet.
// data may be nil or empty, representing an empty set.
func UpsertOrdinal(data []byte, ordinal int) ([]byte, error) {
	if ordinal < 0 || ordinal >= MaxOrdinal {
		return nil, fmt.Errorf("tagset: ordinal %d out of [0,%d): %w", ordinal, MaxOrdinal, errs.ErrAlphabet)
	}
	if len(data) == 0 {
		data = []byte{0, 0}
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("tagset: bitmap shorter than header: %w", errs.ErrBitmapHeader)
	}

	header := binary.BigEndian.Uint16(data[0:2])
	g, p := ordinal/GroupSize, ordinal%GroupSize
	gbit := uint16(1) << uint(15-g)
	pbit := uint16(1) << uint(15-p)

	offset := 2 + 2*bitpack.Popcount16(header&lowerGroupMask(g))

	if header&gbit != 0 {
		word := binary.BigEndian.Uint16(data[offset : offset+2])
		word |= pbit

		out := make([]byte, len(data))
		copy(out, data)
		binary.BigEndian.PutUint16(out[offset:offset+2], word)

		return out, nil
	}

	header |= gbit
	out := make([]byte, len(data)+2)
	binary.BigEndian.PutUint16(out[0:2], header)
	copy(out[2:offset], data[2:offset])
	binary.BigEndian.PutUint16(out[offset:offset+2], pbit)
	copy(out[offset+2:], data[offset:])

	return out, nil
}

// lowerGroupMask returns the header bits belonging to groups with index
// less than g. Lower group indices occupy the higher header bit positions,
// so this is the top g bits of the 16-bit header.
func lowerGroupMask(g int) uint16 {
	if g <= 0 {
		return 0
	}

	return ((uint16(1) << uint(g)) - 1) << uint(16-g)
}
