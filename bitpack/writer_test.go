package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterGetBitExact(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Write(0b1, 1)
	w.Write(0b0, 1)
	w.Write(0b101010, 6)

	buf := NewBuffer(w.Bytes(), nil)
	v, err := buf.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v, "Get(0,1) must return the MSB of the first code unit")

	v, err = buf.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	v, err = buf.Get(2, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(0b101010), v)
}

// Property 7: writing fields (v_k, n_k) and reading back with Get at the
// cumulative offsets yields the same v_k, for arbitrary 1 <= n_k <= 31.
func TestProperty7BitBufferRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		w := NewWriter(nil, 0)

		type field struct {
			v, n, p uint32
		}
		var fields []field

		for i := 0; i < 200; i++ {
			n := uint32(1 + rng.Intn(31))
			v := uint32(rng.Int63()) & (1<<n - 1)
			fields = append(fields, field{v: v, n: n, p: w.Pos()})
			w.Write(v, n)
		}

		buf := NewBuffer(w.Bytes(), nil)
		for _, f := range fields {
			got, err := buf.Get(f.p, f.n)
			require.NoError(t, err)
			assert.Equal(t, f.v, got)
		}
	}
}

func TestWriterBytesLengthRoundsUpToWholeUnits(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Write(1, 3)
	assert.Len(t, w.Bytes(), 2)
}
