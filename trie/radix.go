package trie

import (
	"math/bits"

	"github.com/domaindict/domaindict/cache"
	"github.com/domaindict/domaindict/internal/pool"
	"github.com/domaindict/domaindict/tagcodec"
)

// radixDescriptor is the reconstructed word of a prefix-compressed run,
// the child-local position of the run's first member (loc), and the
// global index of the run's owner (branch) — the node to descend into for
// the run's own children (spec §4.4).
type radixDescriptor struct {
	word   []tagcodec.Symbol
	loc    uint32
	branch uint32
}

// resolveRadix reconstructs the radix word of the run containing child c
// (at child-local position loc under parent). If c and its left sibling
// are both plain (neither is a non-flag compressed link), the run is just
// c's own letter and no cache lookup is needed. Otherwise it consults the
// radix cache keyed by c's global index, and on a miss walks outward from
// c in both directions to find the run's full extent.
func (t *FrozenTrie) resolveRadix(parent Node, c Node, loc uint32, cursor cache.Cursor) (radixDescriptor, cache.Cursor, error) {
	cIsLink, err := isCompressedLink(c)
	if err != nil {
		return radixDescriptor{}, cursor, err
	}

	leftIsLink := false
	if loc > 0 {
		leftIsLink, err = isCompressedLink(Node{t, c.idx - 1})
		if err != nil {
			return radixDescriptor{}, cursor, err
		}
	}

	if !cIsLink && !leftIsLink {
		letter, err := c.Letter()
		if err != nil {
			return radixDescriptor{}, cursor, err
		}

		return radixDescriptor{word: []tagcodec.Symbol{letter}, loc: loc, branch: c.idx}, cursor, nil
	}

	if t.cache != nil {
		if d, newCur, ok := t.cache.Find(c.idx, cursor); ok {
			return d, newCur, nil
		}
	}

	firstChild, err := parent.FirstChild()
	if err != nil {
		return radixDescriptor{}, cursor, err
	}

	childCount, err := parent.ChildCount()
	if err != nil {
		return radixDescriptor{}, cursor, err
	}

	startchild, runStartLoc, err := walkLeft(t, firstChild, loc)
	if err != nil {
		return radixDescriptor{}, cursor, err
	}

	endchild, ownerLoc, err := walkRight(t, firstChild, loc, childCount)
	if err != nil {
		return radixDescriptor{}, cursor, err
	}

	word := append(append([]tagcodec.Symbol{}, startchild...), endchild...)
	ownerGlobal := firstChild + ownerLoc
	runStartGlobal := firstChild + runStartLoc
	runLen := uint32(len(word))

	desc := radixDescriptor{word: word, loc: runStartLoc, branch: ownerGlobal}

	if t.cache != nil {
		t.cache.Put(runStartGlobal, runStartGlobal+runLen, desc, runLenFrequency(runLen))
	}

	return desc, cursor, nil
}

func isCompressedLink(n Node) (bool, error) {
	c, err := n.Compressed()
	if err != nil {
		return false, err
	}

	f, err := n.Final()
	if err != nil {
		return false, err
	}

	return c && !f, nil
}

// walkLeft collects the letters of compressed-non-flag siblings strictly
// left of loc, in left-to-right order, and returns the child-local
// position where the run starts. Siblings are discovered right-to-left, so
// the scratch buffer is filled in discovery order and reversed once into
// the result rather than prepended at each step.
func walkLeft(t *FrozenTrie, firstChild, loc uint32) ([]tagcodec.Symbol, uint32, error) {
	scratch, cleanup := pool.GetUint32Slice()
	defer cleanup()

	idx := loc
	for idx > 0 {
		left := Node{t, firstChild + idx - 1}

		link, err := isCompressedLink(left)
		if err != nil {
			return nil, 0, err
		}
		if !link {
			break
		}

		letter, err := left.Letter()
		if err != nil {
			return nil, 0, err
		}

		*scratch = append(*scratch, uint32(letter))
		idx--
	}

	startchild := make([]tagcodec.Symbol, len(*scratch))
	for i, v := range *scratch {
		startchild[len(startchild)-1-i] = tagcodec.Symbol(v)
	}

	return startchild, idx, nil
}

// walkRight collects letters from loc (inclusive) rightward through
// compressed-non-flag links up to and including the run's owner, and
// returns the owner's child-local position.
func walkRight(t *FrozenTrie, firstChild, loc, childCount uint32) ([]tagcodec.Symbol, uint32, error) {
	scratch, cleanup := pool.GetUint32Slice()
	defer cleanup()

	j := loc
	for {
		cur := Node{t, firstChild + j}

		letter, err := cur.Letter()
		if err != nil {
			return nil, 0, err
		}

		*scratch = append(*scratch, uint32(letter))

		link, err := isCompressedLink(cur)
		if err != nil {
			return nil, 0, err
		}
		if !link {
			break
		}

		j++
		if j >= childCount {
			break
		}
	}

	endchild := make([]tagcodec.Symbol, len(*scratch))
	for i, v := range *scratch {
		endchild[i] = tagcodec.Symbol(v)
	}

	return endchild, j, nil
}

// runLenFrequency computes floor(log2(runLen^2)), the radix cache's
// width-weighted eviction priority (spec §4.8).
func runLenFrequency(runLen uint32) uint32 {
	sq := uint64(runLen) * uint64(runLen)
	if sq == 0 {
		return 0
	}

	return uint32(bits.Len64(sq) - 1)
}
