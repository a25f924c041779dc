package trie

import (
	"fmt"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/domaindict/domaindict/cache"
	"github.com/domaindict/domaindict/config"
	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/format"
	"github.com/domaindict/domaindict/rank"
	"github.com/domaindict/domaindict/tagcodec"
)

// FrozenTrie is an immutable, read-only mount of a built trie: the trie
// blob (LOUDS stream + letter stream), a rank directory over the LOUDS
// portion, and an optional radix-word cache. The cache is the only mutable
// state: Lookup updates it without synchronization, so concurrent Lookup
// calls on one FrozenTrie are safe only when it was opened with the cache
// disabled (cacheCapacity <= 0).
type FrozenTrie struct {
	trie  *bitpack.Buffer
	dir   rank.Directory
	codec *tagcodec.Codec
	cache *cache.RadixCache[radixDescriptor]

	nodeCount   int
	letterStart uint32
	bitslen     uint32
}

// Open mounts a FrozenTrie over previously built td/rd byte blobs.
// cacheCapacity <= 0 disables the radix-word cache.
func Open(tdBytes, rdBytes []byte, cfg *config.Config, cacheCapacity int) (*FrozenTrie, error) {
	codec, err := tagcodec.New(tagcodec.Width(cfg.Width()))
	if err != nil {
		return nil, fmt.Errorf("trie: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	trieBuf := bitpack.NewBuffer(tdBytes, engine)
	dirBuf := bitpack.NewBuffer(rdBytes, engine)

	nodeCount := cfg.NodeCount
	numBits := uint32(2*nodeCount + 1)
	letterStart := numBits
	bitslen := uint32(cfg.Width() + 2)

	if trieBuf.NumBits() < letterStart+uint32(nodeCount)*bitslen {
		return nil, fmt.Errorf("trie: trie blob too short for nodecount=%d: %w", nodeCount, errs.ErrNodeCountMismatch)
	}

	var dir rank.Directory
	if cfg.Layout() == format.SelectAsRankLayout {
		dir, err = rank.NewSelectAsRankDirectory(dirBuf, trieBuf, numBits, cfg.L2)
	} else {
		dir, err = rank.NewPopcountDirectory(dirBuf, trieBuf, numBits, cfg.L1, cfg.L2)
	}
	if err != nil {
		return nil, fmt.Errorf("trie: mounting rank directory: %w", err)
	}

	var radixCache *cache.RadixCache[radixDescriptor]
	if cacheCapacity > 0 {
		radixCache = cache.New[radixDescriptor](cacheCapacity)
	}

	return &FrozenTrie{
		trie:        trieBuf,
		dir:         dir,
		codec:       codec,
		cache:       radixCache,
		nodeCount:   nodeCount,
		letterStart: letterStart,
		bitslen:     bitslen,
	}, nil
}

// Root returns the trie's root node (global index 0).
func (t *FrozenTrie) Root() Node { return Node{t, 0} }

// NodeCount returns the number of real nodes the trie mounts.
func (t *FrozenTrie) NodeCount() int { return t.nodeCount }

// Lookup walks word (the encoded, reversed host, label separators
// interspersed, tag prefix already stripped by the caller) and returns a
// map from every enclosing suffix of word that is a key in the trie to its
// stored ordinal set (spec §4.6). A nil, nil result means no suffix of
// word — including word itself — is a key.
func (t *FrozenTrie) Lookup(word []tagcodec.Symbol) (map[string][]int, error) {
	var result map[string][]int

	node := t.Root()
	i := 0
	cursor := cache.ZeroCursor()
	labelSep := t.codec.LabelSeparator()

	for i < len(word) {
		if word[i] == labelSep {
			final, err := node.Final()
			if err != nil {
				return nil, err
			}

			if final {
				if err := addEntry(&result, t.codec, word[:i], node); err != nil {
					return nil, err
				}
			}
		}

		lo, err := node.LastFlagChild()
		if err != nil {
			return nil, err
		}

		childCount, err := node.ChildCount()
		if err != nil {
			return nil, err
		}

		if uint32(lo+1) >= childCount {
			return result, nil
		}

		firstChild, err := node.FirstChild()
		if err != nil {
			return nil, err
		}

		matched := false
		low, high := int64(lo), int64(childCount)-1

		for low < high {
			mid := low + (high-low+1)/2
			probe := Node{t, firstChild + uint32(mid)}

			desc, newCursor, err := t.resolveRadix(node, probe, uint32(mid), cursor)
			if err != nil {
				return nil, err
			}
			cursor = newCursor

			comp := desc.word

			switch {
			case comp[0] > word[i]:
				if desc.loc == 0 {
					high = -1
				} else {
					high = int64(desc.loc) - 1
				}

			case comp[0] < word[i]:
				low = int64(desc.loc) + int64(len(comp)) - 1

			default:
				remaining := word[i:]
				if len(remaining) < len(comp) {
					return result, nil
				}

				mismatch := false
				for k := 1; k < len(comp); k++ {
					if remaining[k] != comp[k] {
						mismatch = true

						break
					}
				}
				if mismatch {
					return result, nil
				}

				node = Node{t, desc.branch}
				i += len(comp)
				matched = true
			}

			if matched {
				break
			}
		}

		if !matched {
			return result, nil
		}
	}

	final, err := node.Final()
	if err != nil {
		return nil, err
	}

	if final {
		if err := addEntry(&result, t.codec, word, node); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func addEntry(result *map[string][]int, codec *tagcodec.Codec, prefix []tagcodec.Symbol, node Node) error {
	key, err := codec.DecodeLabelSeparated(prefix)
	if err != nil {
		return err
	}

	value, err := node.Value()
	if err != nil {
		return err
	}

	if *result == nil {
		*result = make(map[string][]int)
	}

	(*result)[key] = value

	return nil
}
