// Package domaindict provides a compact, read-optimized dictionary of
// fully-qualified domain names tagged with blocklist-membership ordinal
// sets, built as a succinct LOUDS-style trie.
//
// # Core Features
//
//   - Succinct trie encoding: four node kinds packed into a 2-bit header
//     sharing one fixed-width letter field
//   - Two interchangeable rank-directory layouts (popcount, select-as-rank)
//   - Prefix-compressed (radix) runs with on-demand word reconstruction
//   - Two-level tag bitmap with a raw-ordinal shortcut for small tag sets
//   - Optional LFU radix-word cache for repeated lookups over the same region
//
// # Basic Usage
//
// Building and mounting a dictionary from sorted, encoded inputs:
//
//	import "github.com/domaindict/domaindict"
//
//	cfg, _ := domaindict.NewConfig(domaindict.WithCodec6(), domaindict.WithOptFlags())
//	codec, _ := domaindict.NewCodec(cfg)
//
//	inputs, _ := domaindict.EncodeInputs(codec, []domaindict.HostTag{
//	    {Host: "com", Ordinal: 5},
//	})
//
//	td, rd, nodeCount, err := domaindict.Build(inputs, codec, cfg)
//
//	mountCfg, _ := domaindict.NewConfig(domaindict.WithCodec6(), domaindict.WithOptFlags(),
//	    domaindict.WithNodeCount(nodeCount))
//	dict, err := domaindict.Open(td, rd, mountCfg, 1024)
//
//	result, err := dict.Lookup("com")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the trie,
// tagcodec, and config packages, mirroring their construction and lookup
// calls for the common case. For rank-directory internals, radix-word
// reconstruction, or manifest handling, use those packages directly.
package domaindict

import (
	"fmt"
	"sort"

	"github.com/domaindict/domaindict/config"
	"github.com/domaindict/domaindict/tagcodec"
	"github.com/domaindict/domaindict/trie"
)

// Re-exported option constructors and types so callers depending only on
// this package never need to import config/tagcodec/trie directly.
type (
	Config = config.Config
	Option = config.Option
	Codec  = tagcodec.Codec
	Symbol = tagcodec.Symbol
)

var (
	NewConfig        = config.New
	WithCodec6       = config.WithCodec6
	WithSelectSearch = config.WithSelectSearch
	WithOptFlags     = config.WithOptFlags
	WithInspect      = config.WithInspect
	WithDebug        = config.WithDebug
	WithNodeCount    = config.WithNodeCount
	WithBlockSizes   = config.WithBlockSizes
)

// NewCodec builds the tagcodec.Codec matching cfg's letter width.
func NewCodec(cfg *Config) (*Codec, error) {
	if cfg.UseCodec6 {
		return tagcodec.New(tagcodec.Width6)
	}

	return tagcodec.New(tagcodec.Width8)
}

// HostTag is one (host, blocklist ordinal) pair, the unit callers build an
// input stream from before calling Build.
type HostTag struct {
	Host    string
	Ordinal int
}

// EncodeInputs sorts hostTags by reversed-host lexical order and encodes
// each into the host+delimiter+ordinal word trie.Build expects. Multiple
// entries for the same host (different ordinals) are preserved as separate
// words; TrieBuilder folds them into one flag-child set.
func EncodeInputs(codec *Codec, hostTags []HostTag) ([][]Symbol, error) {
	sorted := make([]HostTag, len(hostTags))
	copy(sorted, hostTags)

	hostSyms := make([][]Symbol, len(sorted))

	var err error
	for i, ht := range sorted {
		hostSyms[i], err = codec.EncodeLabelSeparated(ht.Host)
		if err != nil {
			return nil, fmt.Errorf("domaindict: encoding host %q: %w", ht.Host, err)
		}
	}

	order := make([]int, len(sorted))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return lexLessSymbols(hostSyms[order[a]], hostSyms[order[b]])
	})

	out := make([][]Symbol, len(sorted))
	for i, idx := range order {
		ordSyms, err := codec.Encode(fmt.Sprintf("%d", sorted[idx].Ordinal))
		if err != nil {
			return nil, fmt.Errorf("domaindict: encoding ordinal for %q: %w", sorted[idx].Host, err)
		}

		word := append([]Symbol{}, hostSyms[idx]...)
		word = append(word, codec.Delimiter())
		word = append(word, ordSyms...)
		out[i] = word
	}

	return out, nil
}

func lexLessSymbols(a, b []Symbol) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Build is the top-level wrapper over trie.Build: insert every word of
// sortedEncodedInputs (as produced by EncodeInputs) into a fresh trie and
// emit its two byte blobs.
func Build(sortedEncodedInputs [][]Symbol, codec *Codec, cfg *Config) (tdBytes, rdBytes []byte, nodeCount int, err error) {
	return trie.Build(sortedEncodedInputs, codec, cfg)
}

// Dictionary is a mounted, read-only domain dictionary.
type Dictionary struct {
	frozen *trie.FrozenTrie
	codec  *Codec
}

// Open mounts a Dictionary over previously built td/rd byte blobs.
// cacheCapacity <= 0 disables the radix-word cache.
func Open(tdBytes, rdBytes []byte, cfg *Config, cacheCapacity int) (*Dictionary, error) {
	codec, err := NewCodec(cfg)
	if err != nil {
		return nil, err
	}

	frozen, err := trie.Open(tdBytes, rdBytes, cfg, cacheCapacity)
	if err != nil {
		return nil, err
	}

	return &Dictionary{frozen: frozen, codec: codec}, nil
}

// Lookup encodes host (reversed, label-separated) and returns every
// enclosing suffix of host present in the dictionary mapped to its stored
// ordinal set. A nil map means no suffix of host, including host itself,
// is a key.
func (d *Dictionary) Lookup(host string) (map[string][]int, error) {
	word, err := d.codec.EncodeLabelSeparated(host)
	if err != nil {
		return nil, fmt.Errorf("domaindict: encoding query %q: %w", host, err)
	}

	return d.frozen.Lookup(word)
}

// NodeCount returns the number of real nodes the mounted trie holds.
func (d *Dictionary) NodeCount() int { return d.frozen.NodeCount() }

// Stat returns a size summary of the mounted trie.
func (d *Dictionary) Stat() (trie.Stats, error) { return d.frozen.Stat() }
