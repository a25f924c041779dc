package rank

import (
	"math/rand"
	"testing"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomTrieBuffer(rng *rand.Rand, numBits uint32) *bitpack.Buffer {
	w := bitpack.NewWriter(nil, 0)
	for i := uint32(0); i < numBits; i++ {
		w.Write(uint32(rng.Intn(2)), 1)
	}

	return bitpack.NewBuffer(w.Bytes(), nil)
}

func buildPopcount(t *testing.T, trie *bitpack.Buffer, numBits, l1, l2 uint32) *PopcountDirectory {
	t.Helper()

	data, err := BuildPopcountDirectory(trie, numBits, l1, l2)
	require.NoError(t, err)

	dirBuf := bitpack.NewBuffer(data, nil)
	d, err := NewPopcountDirectory(dirBuf, trie, numBits, l1, l2)
	require.NoError(t, err)

	return d
}

// Property 4: for every bit position x in [0, numBits), rank(0,x) +
// rank(1,x) == x+1 (popcount layout).
func TestProperty4RankComplementarity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	numBits := uint32(5000)
	trie := randomTrieBuffer(rng, numBits)
	d := buildPopcount(t, trie, numBits, 1024, 32)

	for trial := 0; trial < 500; trial++ {
		x := uint32(rng.Intn(int(numBits)))

		r0, err := d.Rank(Zero, x)
		require.NoError(t, err)
		r1, err := d.Rank(One, x)
		require.NoError(t, err)

		assert.Equal(t, x+1, r0+r1)
	}
}

// Property 5: for every y in [1, onesCount], rank(1, select(1,y)) == y and
// select(1,·) returns the smallest such position.
//
// The corpus spec bounds this property by "zero_count", which cannot be
// right for a ones-select property; this test instead bounds y by the
// actual count of 1-bits (see DESIGN.md).
func TestProperty5SelectOneRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	numBits := uint32(5000)
	trie := randomTrieBuffer(rng, numBits)
	d := buildPopcount(t, trie, numBits, 1024, 32)

	onesCount, err := d.Rank(One, numBits-1)
	require.NoError(t, err)

	for y := uint32(1); y <= onesCount; y += 1 + uint32(rng.Intn(7)) {
		pos, err := d.Select(One, y)
		require.NoError(t, err)

		got, err := d.Rank(One, pos)
		require.NoError(t, err)
		assert.Equal(t, y, got)

		bit, err := trie.Get(pos, 1)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), bit, "select(1,y) must land on a 1-bit")

		if pos > 0 {
			before, err := d.Rank(One, pos-1)
			require.NoError(t, err)
			assert.Less(t, before, y, "select(1,y) must return the smallest matching position")
		}
	}
}

func TestPopcountDirectoryRankMatchesNaivePopcount(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	numBits := uint32(2000)
	trie := randomTrieBuffer(rng, numBits)
	d := buildPopcount(t, trie, numBits, 256, 16)

	for trial := 0; trial < 300; trial++ {
		x := uint32(rng.Intn(int(numBits)))

		want, err := trie.Count(0, x+1)
		require.NoError(t, err)

		got, err := d.Rank(One, x)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPopcountLayoutSmallStream(t *testing.T) {
	// One little-endian code unit, 0xB400: bits 1011 0100 0000 0000.
	trie := bitpack.NewBuffer([]byte{0b00000000, 0b10110100}, nil)
	d := buildPopcount(t, trie, 9, 8, 4)

	r1, err := d.Rank(One, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), r1)

	r1, err = d.Rank(One, 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), r1)
}
