package trie

import (
	"github.com/domaindict/domaindict/rank"
	"github.com/domaindict/domaindict/tagcodec"
	"github.com/domaindict/domaindict/tagset"
)

// Node is an ephemeral accessor over one index of a FrozenTrie's letter
// stream (spec §4.3). It holds no state of its own beyond its index and
// never outlives the trie it points into.
type Node struct {
	trie *FrozenTrie
	idx  uint32
}

func (n Node) entryOffset() uint32 {
	return n.trie.letterStart + n.idx*n.trie.bitslen
}

// Letter returns the low W bits of the node's entry.
func (n Node) Letter() (tagcodec.Symbol, error) {
	v, err := n.trie.trie.Get(n.entryOffset()+2, uint32(n.trie.codec.Width()))

	return tagcodec.Symbol(v), err
}

// Final reports whether the node's path is a complete key.
func (n Node) Final() (bool, error) {
	v, err := n.trie.trie.Get(n.entryOffset()+1, 1)

	return v == 1, err
}

// Compressed reports whether the node is an internal link of a
// prefix-compressed run.
func (n Node) Compressed() (bool, error) {
	v, err := n.trie.trie.Get(n.entryOffset(), 1)

	return v == 1, err
}

// Flag reports whether the node carries one code unit of a tag bitmap.
func (n Node) Flag() (bool, error) {
	c, err := n.Compressed()
	if err != nil {
		return false, err
	}

	f, err := n.Final()
	if err != nil {
		return false, err
	}

	return c && f, nil
}

// FirstChild returns the global index of the node's first child.
func (n Node) FirstChild() (uint32, error) {
	s, err := n.trie.dir.Select(rank.Zero, n.idx+1)
	if err != nil {
		return 0, err
	}

	return s - n.idx, nil
}

// ChildCount returns the number of children the node owns.
func (n Node) ChildCount() (uint32, error) {
	s2, err := n.trie.dir.Select(rank.Zero, n.idx+2)
	if err != nil {
		return 0, err
	}

	fc, err := n.FirstChild()
	if err != nil {
		return 0, err
	}

	return s2 - n.idx - 1 - fc, nil
}

// LastFlagChild scans children from child-local position 0 upward,
// returning the index of the last child whose flag bit is set, or -1 if
// the node has no flag children. Flag children always form a contiguous
// prefix of a node's children (spec §3), so the scan stops at the first
// non-flag child.
func (n Node) LastFlagChild() (int, error) {
	childCount, err := n.ChildCount()
	if err != nil {
		return 0, err
	}

	firstChild, err := n.FirstChild()
	if err != nil {
		return 0, err
	}

	last := -1

	for k := uint32(0); k < childCount; k++ {
		child := Node{n.trie, firstChild + k}

		isFlag, err := child.Flag()
		if err != nil {
			return 0, err
		}

		if !isFlag {
			break
		}

		last = int(k)
	}

	return last, nil
}

// Value decodes the node's contiguous flag-child prefix into the ordinal
// set it represents, applying the optflags shortcut or the two-level
// bitmap inverse depending on how many flag children are present (spec
// §4.5, §4.6).
func (n Node) Value() ([]int, error) {
	firstChild, err := n.FirstChild()
	if err != nil {
		return nil, err
	}

	lastFlag, err := n.LastFlagChild()
	if err != nil {
		return nil, err
	}

	if lastFlag < 0 {
		return nil, nil
	}

	units := make([]int, 0, lastFlag+1)

	for k := 0; k <= lastFlag; k++ {
		letter, err := (Node{n.trie, firstChild + uint32(k)}).Letter()
		if err != nil {
			return nil, err
		}

		units = append(units, int(letter))
	}

	width := int(n.trie.codec.Width())

	if len(units) <= tagset.OptFlagsLimit(width) {
		return tagset.DecodeOptFlags(units), nil
	}

	bitmap, err := tagset.UnpackUnits(units, width)
	if err != nil {
		return nil, err
	}

	return tagset.DecodeBitmap(bitmap)
}
