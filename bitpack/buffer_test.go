package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRandomStream(rng *rand.Rand, numBits int) *Buffer {
	numUnits := (numBits + 15) / 16
	data := make([]byte, numUnits*2)
	rng.Read(data)

	return NewBuffer(data, nil)
}

func naivePos0(buf *Buffer, i, n uint32) (uint32, bool) {
	remaining := n
	for x := i; x < buf.NumBits(); x++ {
		bit, _ := buf.Get(x, 1)
		if bit == 0 {
			remaining--
			if remaining == 0 {
				return x, true
			}
		}
	}

	return 0, false
}

// Property 8: Pos0(i, n) equals the index of the n-th zero in the stream
// starting from i, verified against a naive linear scan.
func TestProperty8Pos0MatchesNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := buildRandomStream(rng, 64*1024)

	for trial := 0; trial < 500; trial++ {
		i := uint32(rng.Intn(int(buf.NumBits())))
		n := uint32(1 + rng.Intn(8))

		want, ok := naivePos0(buf, i, n)
		got, err := buf.Pos0(i, n)
		if !ok {
			assert.Error(t, err)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPos0TieBreakZero(t *testing.T) {
	buf := NewBuffer([]byte{0xFF, 0xFF}, nil)
	got, err := buf.Pos0(5, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), got)
}

func TestPos0OutOfBounds(t *testing.T) {
	buf := NewBuffer([]byte{0x00, 0x00}, nil)
	_, err := buf.Pos0(0, 100)
	require.Error(t, err)

	_, err = buf.Pos0(16, 1)
	require.Error(t, err)
}

func TestGetRejectsBadWidth(t *testing.T) {
	buf := NewBuffer([]byte{0x00, 0x00}, nil)
	_, err := buf.Get(0, 0)
	require.Error(t, err)

	_, err = buf.Get(0, 32)
	require.Error(t, err)
}

func TestGetOutOfBounds(t *testing.T) {
	buf := NewBuffer([]byte{0x00, 0x00}, nil)
	_, err := buf.Get(15, 2)
	require.Error(t, err)
}

func TestCountMatchesGetPopcount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	buf := buildRandomStream(rng, 1024)

	for trial := 0; trial < 200; trial++ {
		p := uint32(rng.Intn(int(buf.NumBits()) - 20))
		n := uint32(1 + rng.Intn(20))

		got, err := buf.Count(p, n)
		require.NoError(t, err)

		var want uint32
		for x := p; x < p+n; x++ {
			bit, _ := buf.Get(x, 1)
			want += bit
		}
		assert.Equal(t, want, got)
	}
}

func TestGetSpanningMultipleUnits(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Write(0b1011, 4)
	w.Write(0b0100011010011111, 16)
	w.Write(0b0000, 4)

	buf := NewBuffer(w.Bytes(), nil)
	v, err := buf.Get(4, 16)
	require.NoError(t, err)
	assert.Equal(t, uint32(0b0100011010011111), v)
}
