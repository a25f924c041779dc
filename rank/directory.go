package rank

import (
	"math/bits"

	"github.com/domaindict/domaindict/format"
)

// Which selects the bit value rank/select counts or locates.
type Which int

const (
	// Zero selects the 0-bits of the LOUDS stream.
	Zero Which = 0
	// One selects the 1-bits of the LOUDS stream.
	One Which = 1
)

// Directory is the interface both layouts satisfy.
type Directory interface {
	// Rank returns the number of `which`-bits in [0, x].
	Rank(which Which, x uint32) (uint32, error)
	// Select returns the position of the y-th `which`-bit, y >= 1.
	Select(which Which, y uint32) (uint32, error)
	// Layout reports which on-disk layout this Directory implements.
	Layout() format.RankLayout
}

// bitWidth returns the number of bits needed to represent any value in
// [0, n), i.e. ceil(log2(n)), with a floor of 1.
func bitWidth(n uint32) uint32 {
	if n <= 1 {
		return 1
	}

	return uint32(bits.Len32(n - 1))
}
