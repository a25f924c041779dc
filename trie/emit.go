package trie

import (
	"fmt"
	"sort"

	"github.com/domaindict/domaindict/config"
	"github.com/domaindict/domaindict/format"
	"github.com/domaindict/domaindict/tagcodec"
	"github.com/domaindict/domaindict/tagset"
)

// flatNode is one level-order entry of the final letter stream.
type flatNode struct {
	kind       format.NodeKind
	letter     tagcodec.Symbol
	childCount int
}

// pendingNode is a BFS queue entry: a real buildNode whose own flatNode
// entry has already been appended to out (at outIdx), but whose children
// have not yet been expanded and appended.
type pendingNode struct {
	owner  *buildNode
	outIdx int
}

// flatten performs the level-order traversal of spec §4.7. A compressed
// run is a contiguous span of SIBLING indices under one parent: a
// multi-letter buildNode edge expands into that many letters-1 auxiliary
// compressed entries (childless) followed by one real entry (the run's
// owner, carrying header bits and its own children) — all emitted
// together as part of the parent's child list, in the same BFS step that
// processes the parent.
func flatten(root *buildNode, codec *tagcodec.Codec, cfg *config.Config) ([]flatNode, error) {
	rootKind := format.KindPlain
	if root.final {
		rootKind = format.KindFinal
	}

	out := []flatNode{{kind: rootKind, letter: 0, childCount: 0}}
	queue := []pendingNode{{owner: root, outIdx: 0}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		flagItems, err := flagChain(p.owner, codec, cfg)
		if err != nil {
			return nil, err
		}

		count := len(flagItems)
		out = append(out, flagItems...)

		for _, child := range p.owner.children {
			for k := 0; k < len(child.letters)-1; k++ {
				out = append(out, flatNode{kind: format.KindCompressed, letter: child.letters[k], childCount: 0})
				count++
			}

			finalKind := format.KindPlain
			if child.final {
				finalKind = format.KindFinal
			}

			ownerIdx := len(out)
			out = append(out, flatNode{kind: finalKind, letter: child.letters[len(child.letters)-1], childCount: 0})
			count++

			queue = append(queue, pendingNode{owner: child, outIdx: ownerIdx})
		}

		out[p.outIdx].childCount = count
	}

	return out, nil
}

// flagChain encodes owner's tag set into W-bit flag flatNodes, using the
// optflags raw-ordinal shortcut when cfg.OptFlags allows it and the set is
// small enough and every ordinal fits in W bits, the two-level bitmap
// otherwise (spec §4.5). Flag children never have children of their own.
func flagChain(owner *buildNode, codec *tagcodec.Codec, cfg *config.Config) ([]flatNode, error) {
	if len(owner.tags) == 0 {
		return nil, nil
	}

	width := int(codec.Width())

	tags := append([]int{}, owner.tags...)
	sort.Ints(tags)

	useOptFlags := cfg.OptFlags && len(tags) <= tagset.OptFlagsLimit(width)
	if useOptFlags {
		limit := 1 << uint(width)
		for _, t := range tags {
			if t >= limit {
				useOptFlags = false

				break
			}
		}
	}

	var units []int

	if useOptFlags {
		units = tagset.EncodeOptFlags(tags)
	} else {
		bitmap, err := tagset.EncodeBitmap(tags)
		if err != nil {
			return nil, fmt.Errorf("trie: encoding tag bitmap: %w", err)
		}

		units, err = tagset.PackUnits(bitmap, width)
		if err != nil {
			return nil, fmt.Errorf("trie: packing tag bitmap: %w", err)
		}
	}

	items := make([]flatNode, len(units))
	for i, u := range units {
		items[i] = flatNode{kind: format.KindFlag, letter: tagcodec.Symbol(u), childCount: 0}
	}

	return items, nil
}
