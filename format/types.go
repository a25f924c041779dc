// Package format defines the small enums shared across the domaindict
// packages: trie node kinds, rank-directory layouts, and blob compression
// types.
package format

// NodeKind is the 2-bit header carried by every entry in the letter stream
// (spec §3, Node kinds).
type NodeKind uint8

const (
	// KindPlain is an interior node: neither final nor compressed nor flag.
	KindPlain NodeKind = 0b00
	// KindFinal marks a node whose path is a complete key.
	KindFinal NodeKind = 0b01
	// KindCompressed marks an internal link of a prefix-compressed run.
	KindCompressed NodeKind = 0b10
	// KindFlag marks a node that carries one code unit of a tag bitmap.
	KindFlag NodeKind = 0b11
)

func (k NodeKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFinal:
		return "final"
	case KindCompressed:
		return "compressed"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Compressed reports whether the compressed bit of the header is set.
func (k NodeKind) Compressed() bool { return k&0b10 != 0 }

// Final reports whether the final bit of the header is set.
func (k NodeKind) Final() bool { return k&0b01 != 0 }

// Flag reports whether both header bits are set (compressed && final).
func (k NodeKind) Flag() bool { return k == KindFlag }

// RankLayout selects the rank-directory implementation built over the
// trie's LOUDS child-count stream (spec §4.2).
type RankLayout uint8

const (
	// PopcountLayout is the classic L1/L2 cumulative popcount directory.
	PopcountLayout RankLayout = iota
	// SelectAsRankLayout precomputes the position of every L2-th zero so
	// that select(0, y) becomes an O(1) lookup.
	SelectAsRankLayout
)

func (l RankLayout) String() string {
	if l == SelectAsRankLayout {
		return "select-as-rank"
	}

	return "popcount"
}

// CompressionType identifies the codec used to compress a distributed byte
// blob before it reaches bitpack.Buffer.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
