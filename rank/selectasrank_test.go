package rank

import (
	"math/rand"
	"testing"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSelectAsRank(t *testing.T, trie *bitpack.Buffer, numBits, l2 uint32) *SelectAsRankDirectory {
	t.Helper()

	data, err := BuildSelectAsRankDirectory(trie, numBits, l2)
	require.NoError(t, err)

	dirBuf := bitpack.NewBuffer(data, nil)
	d, err := NewSelectAsRankDirectory(dirBuf, trie, numBits, l2)
	require.NoError(t, err)

	return d
}

// S5: for a random 64-Kib LOUDS stream and L1=1024, L2=32, both layouts
// produce the same answer to select(0,y) for all y in [1, zero_count].
func TestS5ScenarioLayoutsAgreeOnSelectZero(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	numBits := uint32(64 * 1024)
	trie := randomTrieBuffer(rng, numBits)

	pop := buildPopcount(t, trie, numBits, 1024, 32)
	sar := buildSelectAsRank(t, trie, numBits, 32)

	zeroCount, err := pop.Rank(Zero, numBits-1)
	require.NoError(t, err)

	for y := uint32(1); y <= zeroCount; y += 1 + uint32(rng.Intn(37)) {
		want, err := pop.Select(Zero, y)
		require.NoError(t, err)

		got, err := sar.Select(Zero, y)
		require.NoError(t, err)

		assert.Equal(t, want, got, "y=%d", y)
	}
	// also check the last one explicitly
	want, err := pop.Select(Zero, zeroCount)
	require.NoError(t, err)
	got, err := sar.Select(Zero, zeroCount)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectAsRankRankMatchesPopcountLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	numBits := uint32(8000)
	trie := randomTrieBuffer(rng, numBits)

	pop := buildPopcount(t, trie, numBits, 1024, 32)
	sar := buildSelectAsRank(t, trie, numBits, 32)

	for trial := 0; trial < 300; trial++ {
		x := uint32(rng.Intn(int(numBits)))

		want, err := pop.Rank(Zero, x)
		require.NoError(t, err)

		got, err := sar.Rank(Zero, x)
		require.NoError(t, err)

		assert.Equal(t, want, got, "x=%d", x)
	}
}

// Open question 1 (spec §9): rank(1,·) and select(1,·) are unsupported
// under the select-as-rank layout and must return an error rather than
// silently degrade to the zero-bit path.
func TestSelectAsRankRejectsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	numBits := uint32(2000)
	trie := randomTrieBuffer(rng, numBits)
	sar := buildSelectAsRank(t, trie, numBits, 32)

	_, err := sar.Rank(One, 10)
	require.Error(t, err)

	_, err = sar.Select(One, 1)
	require.Error(t, err)
}

func TestSelectAsRankSmallStream(t *testing.T) {
	trie := bitpack.NewBuffer([]byte{0b10110100, 0b00000000}, nil)
	sar := buildSelectAsRank(t, trie, 9, 2)

	pos, err := sar.Select(Zero, 1)
	require.NoError(t, err)
	bit, err := trie.Get(pos, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), bit)

	r0, err := sar.Rank(Zero, pos)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), r0)
}
