package trie

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/domaindict/domaindict/bitpack"
	"github.com/domaindict/domaindict/config"
	"github.com/domaindict/domaindict/endian"
	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/format"
	"github.com/domaindict/domaindict/rank"
	"github.com/domaindict/domaindict/tagcodec"
)

// buildNode is one edge+node of the in-memory tree the builder assembles.
// letters is the (possibly multi-letter) run leading to this node from its
// parent; it is flattened into a chain of single-letter compressed auxiliary
// nodes at Emit time (spec §4.7).
type buildNode struct {
	letters  []tagcodec.Symbol
	final    bool
	children []*buildNode // sorted ascending by letters[0]
	tags     []int        // accumulated ordinal set, encoded lazily at Emit
}

// TrieBuilder assembles a trie from a lex-sorted stream of encoded
// host+delimiter+ordinal inputs (spec §4.7). Insert must be called in
// non-decreasing order of the host portion; Emit finalizes the tree into
// the two on-disk blobs and discards the builder's internal state.
type TrieBuilder struct {
	codec *tagcodec.Codec
	cfg   *config.Config

	root     *buildNode
	prevWord []tagcodec.Symbol
	prevPath []*buildNode
	started  bool
}

// NewBuilder creates an empty TrieBuilder for the given codec/config pair.
func NewBuilder(codec *tagcodec.Codec, cfg *config.Config) *TrieBuilder {
	root := &buildNode{}

	return &TrieBuilder{
		codec:    codec,
		cfg:      cfg,
		root:     root,
		prevPath: []*buildNode{root},
	}
}

// Insert adds one encoded word of the form reverse(host) + delimiter +
// ordinal-digits. Hosts must arrive in non-decreasing lexical order; the
// same host may be inserted repeatedly with different ordinals, each OR'd
// into that host's tag set.
func (b *TrieBuilder) Insert(word []tagcodec.Symbol) error {
	delimIdx := indexOfSymbol(word, b.codec.Delimiter())
	if delimIdx < 0 {
		return fmt.Errorf("trie: insert %v: %w", word, errs.ErrMissingDelimiter)
	}

	hostSyms := word[:delimIdx]
	ordinalSyms := word[delimIdx+1:]

	ordinalStr, err := b.codec.Decode(ordinalSyms)
	if err != nil {
		return fmt.Errorf("trie: decoding tag ordinal: %w", err)
	}

	ordinal, err := strconv.Atoi(ordinalStr)
	if err != nil {
		return fmt.Errorf("trie: parsing tag ordinal %q: %w", ordinalStr, errs.ErrAlphabet)
	}

	if b.started && lexLess(hostSyms, b.prevWord) {
		return fmt.Errorf("trie: %w", errs.ErrLexOrder)
	}

	commonLen := commonPrefixLen(b.prevWord, hostSyms)

	terminal, newPath, err := b.attach(hostSyms, commonLen)
	if err != nil {
		return err
	}

	if !containsInt(terminal.tags, ordinal) {
		terminal.tags = append(terminal.tags, ordinal)
	}

	b.prevWord = append([]tagcodec.Symbol{}, hostSyms...)
	b.prevPath = newPath
	b.started = true

	return nil
}

// attach walks the cached previous-insert path down to depth commonLen,
// splitting a node if commonLen falls mid-run, then appends a new terminal
// node for the unmatched suffix of hostSyms (or reuses the existing node at
// that depth if hostSyms matches it exactly). It returns the terminal node
// and the full root-to-terminal path to cache for the next Insert.
func (b *TrieBuilder) attach(hostSyms []tagcodec.Symbol, commonLen int) (*buildNode, []*buildNode, error) {
	basePath := make([]*buildNode, 0, len(b.prevPath)+1)

	depth := 0
	split := false

	for _, node := range b.prevPath {
		edgeLen := len(node.letters)
		if depth+edgeLen <= commonLen {
			basePath = append(basePath, node)
			depth += edgeLen

			continue
		}

		splitOffset := commonLen - depth
		if splitOffset > 0 {
			successor := &buildNode{
				letters:  append([]tagcodec.Symbol{}, node.letters[splitOffset:]...),
				final:    node.final,
				children: node.children,
				tags:     node.tags,
			}
			node.letters = node.letters[:splitOffset]
			node.final = false
			node.tags = nil
			node.children = []*buildNode{successor}
			basePath = append(basePath, node)
			depth += splitOffset
		}

		split = true

		break
	}

	_ = split

	attachNode := basePath[len(basePath)-1]
	remainder := hostSyms[commonLen:]

	if len(remainder) == 0 {
		attachNode.final = true

		return attachNode, basePath, nil
	}

	terminal := &buildNode{letters: append([]tagcodec.Symbol{}, remainder...), final: true}
	attachNode.children = insertSortedChild(attachNode.children, terminal)

	return terminal, append(basePath, terminal), nil
}

// Emit performs the level-order traversal (spec §4.7) and returns the trie
// blob (LOUDS stream followed by the fixed-width letter stream), the
// rank-directory blob built over the LOUDS portion, and the emitted node
// count. The builder must not be reused after Emit.
func (b *TrieBuilder) Emit() (tdBytes, rdBytes []byte, nodeCount int, err error) {
	flat, err := flatten(b.root, b.codec, b.cfg)
	if err != nil {
		return nil, nil, 0, err
	}

	nodeCount = len(flat)
	w := int(b.codec.Width())

	engine := endian.GetLittleEndianEngine()
	trieWriter := bitpack.NewWriter(engine, 0)

	// Synthetic super-root: one child (the true root at index 0).
	trieWriter.Write(1, 1)
	trieWriter.Write(0, 1)

	for _, n := range flat {
		for k := 0; k < n.childCount; k++ {
			trieWriter.Write(1, 1)
		}

		trieWriter.Write(0, 1)
	}

	numBits := uint32(2*nodeCount + 1)

	for _, n := range flat {
		packed := uint32(n.kind)<<uint(w) | uint32(n.letter)
		trieWriter.Write(packed, uint32(w+2))
	}

	tdBytes = trieWriter.Bytes()

	trieBuf := bitpack.NewBuffer(tdBytes, engine)

	if b.cfg.Layout() == format.SelectAsRankLayout {
		rdBytes, err = rank.BuildSelectAsRankDirectory(trieBuf, numBits, b.cfg.L2)
	} else {
		rdBytes, err = rank.BuildPopcountDirectory(trieBuf, numBits, b.cfg.L1, b.cfg.L2)
	}
	if err != nil {
		return nil, nil, 0, fmt.Errorf("trie: building rank directory: %w", err)
	}

	return tdBytes, rdBytes, nodeCount, nil
}

func indexOfSymbol(word []tagcodec.Symbol, sym tagcodec.Symbol) int {
	for i, s := range word {
		if s == sym {
			return i
		}
	}

	return -1
}

func commonPrefixLen(a, b []tagcodec.Symbol) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

func lexLess(a, b []tagcodec.Symbol) bool {
	n := commonPrefixLen(a, b)
	if n < len(a) && n < len(b) {
		return a[n] < b[n]
	}

	return len(a) < len(b)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

func insertSortedChild(children []*buildNode, n *buildNode) []*buildNode {
	i := sort.Search(len(children), func(i int) bool {
		return children[i].letters[0] >= n.letters[0]
	})

	children = append(children, nil)
	copy(children[i+1:], children[i:])
	children[i] = n

	return children
}
