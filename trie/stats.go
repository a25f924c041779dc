package trie

// Stats is a read-only summary of a frozen trie's size, useful for the
// size-budget concerns a production deployment cares about but that the
// core reader never surfaces on its own.
type Stats struct {
	NodeCount      int
	LetterBits     uint32
	LOUDSBits      uint32
	TrieBlobBytes  int
	FlagNodeCount  int
}

// Stat computes a Stats summary by scanning t's letter stream once.
func (t *FrozenTrie) Stat() (Stats, error) {
	s := Stats{
		NodeCount:     t.nodeCount,
		LOUDSBits:     t.letterStart,
		LetterBits:    uint32(t.nodeCount) * t.bitslen,
		TrieBlobBytes: len(t.trie.Bytes()),
	}

	for i := 0; i < t.nodeCount; i++ {
		flag, err := (Node{t, uint32(i)}).Flag()
		if err != nil {
			return Stats{}, err
		}

		if flag {
			s.FlagNodeCount++
		}
	}

	return s, nil
}
