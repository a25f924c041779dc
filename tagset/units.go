package tagset

import (
	"fmt"

	"github.com/domaindict/domaindict/errs"
)

// OptFlagsLimit returns the maximum ordinal-set size the optflags shortcut
// covers for a given letter width: 3 ordinals for the 8-bit codec, 4 for
// the 6-bit codec (spec §4.5).
func OptFlagsLimit(width int) int {
	if width == 6 {
		return 4
	}

	return 3
}

// PackUnits splits bitmap bytes into width-bit code units, MSB-first, two
// bytes (one 16-bit word) at a time. Each 16-bit word packs into
// ceil(16/width) units; the last unit of a word is zero-padded in its low
// bits when width does not divide 16 evenly.
func PackUnits(data []byte, width int) ([]int, error) {
	if width != 6 && width != 8 {
		return nil, fmt.Errorf("tagset: width %d: %w", width, errs.ErrInvalidWidth)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("tagset: bitmap byte length %d is not a multiple of 2", len(data))
	}

	unitsPerWord := (16 + width - 1) / width
	out := make([]int, 0, unitsPerWord*len(data)/2)

	for i := 0; i < len(data); i += 2 {
		word := uint32(data[i])<<8 | uint32(data[i+1])
		// Left-align the 16-bit word within unitsPerWord*width bits, then
		// peel off width-bit chunks MSB-first.
		padded := word << uint(unitsPerWord*width-16)
		for u := 0; u < unitsPerWord; u++ {
			shift := uint((unitsPerWord - 1 - u) * width)
			chunk := (padded >> shift) & ((1 << uint(width)) - 1)
			out = append(out, int(chunk))
		}
	}

	return out, nil
}

// UnpackUnits is the inverse of PackUnits.
func UnpackUnits(units []int, width int) ([]byte, error) {
	if width != 6 && width != 8 {
		return nil, fmt.Errorf("tagset: width %d: %w", width, errs.ErrInvalidWidth)
	}

	unitsPerWord := (16 + width - 1) / width
	if len(units)%unitsPerWord != 0 {
		return nil, fmt.Errorf("tagset: %d units is not a multiple of %d units/word", len(units), unitsPerWord)
	}

	out := make([]byte, 0, 2*len(units)/unitsPerWord)
	for i := 0; i < len(units); i += unitsPerWord {
		var padded uint32
		for u := 0; u < unitsPerWord; u++ {
			padded = padded<<uint(width) | uint32(units[i+u])
		}
		word := padded >> uint(unitsPerWord*width-16)
		out = append(out, byte(word>>8), byte(word))
	}

	return out, nil
}

// EncodeOptFlags returns tags as a raw ordinal list suitable for storing
// one ordinal per flag-child code unit. Callers must first confirm
// len(tags) <= OptFlagsLimit(width).
func EncodeOptFlags(tags []int) []int {
	out := make([]int, len(tags))
	copy(out, tags)

	return out
}

// DecodeOptFlags is the inverse of EncodeOptFlags: the flag-child units are
// already the raw ordinals.
func DecodeOptFlags(units []int) []int {
	out := make([]int, len(units))
	copy(out, units)

	return out
}
