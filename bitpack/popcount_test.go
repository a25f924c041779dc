package bitpack

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopcountByteMatchesStdlib(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, bits.OnesCount8(uint8(i)), PopcountByte(byte(i)))
	}
}

func TestPopcount16MatchesStdlib(t *testing.T) {
	for _, u := range []uint16{0x0000, 0xFFFF, 0x8001, 0x00FF, 0xAAAA, 0x5555} {
		assert.Equal(t, bits.OnesCount16(u), Popcount16(u))
	}
}
