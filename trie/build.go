package trie

import (
	"fmt"

	"github.com/domaindict/domaindict/config"
	"github.com/domaindict/domaindict/tagcodec"
)

// Build inserts every word of sortedEncodedInputs (in order) into a fresh
// TrieBuilder and emits the resulting blobs. It is the single-shot
// convenience wrapper spec.md §6 names as the runtime API's build(...)
// function.
func Build(sortedEncodedInputs [][]tagcodec.Symbol, codec *tagcodec.Codec, cfg *config.Config) (tdBytes, rdBytes []byte, nodeCount int, err error) {
	b := NewBuilder(codec, cfg)

	for i, word := range sortedEncodedInputs {
		if err := b.Insert(word); err != nil {
			return nil, nil, 0, fmt.Errorf("trie: inserting word %d: %w", i, err)
		}
	}

	return b.Emit()
}
