// Package config defines the small option record enumerated in spec §6 and
// the on-disk manifest (`basicconfig.json`) that carries it, plus the blob
// compression envelope (spec SPEC_FULL.md DOMAIN STACK) layered outside the
// core trie/rank packages.
package config

import (
	"fmt"

	"github.com/domaindict/domaindict/errs"
	"github.com/domaindict/domaindict/format"
	"github.com/domaindict/domaindict/internal/options"
)

// DefaultL1 and DefaultL2 are the rank directory block sizes used unless a
// config.Option overrides them (spec §4.2).
const (
	DefaultL1 = 1024
	DefaultL2 = 32
)

// Config is the record enumerating the build/mount options of spec §6.
// Debug/Inspect are diagnostics only and have no effect on the emitted
// bytes (spec §9, "Global mutable state" — these live on the config
// record, never as package globals).
type Config struct {
	UseCodec6    bool
	SelectSearch bool
	OptFlags     bool
	Inspect      bool
	Debug        bool
	NodeCount    int
	L1           uint32
	L2           uint32
}

// Option configures a Config via the functional-options pattern.
type Option = options.Option[*Config]

// New builds a Config with defaults (8-bit codec, popcount layout,
// optflags disabled, L1/L2 at their spec defaults) plus the given options.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		L1: DefaultL1,
		L2: DefaultL2,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.L1 == 0 || c.L2 == 0 || c.L1%c.L2 != 0 {
		return nil, fmt.Errorf("config: L1=%d L2=%d: %w", c.L1, c.L2, errs.ErrBlockSize)
	}

	return c, nil
}

// WithCodec6 selects the 6-bit letter alphabet instead of the 8-bit raw one.
func WithCodec6() Option {
	return options.NoError(func(c *Config) { c.UseCodec6 = true })
}

// WithSelectSearch selects the select-as-rank directory layout.
func WithSelectSearch() Option {
	return options.NoError(func(c *Config) { c.SelectSearch = true })
}

// WithOptFlags enables the small-tag-set raw-ordinal shortcut.
func WithOptFlags() Option {
	return options.NoError(func(c *Config) { c.OptFlags = true })
}

// WithInspect enables diagnostics-only inspection mode.
func WithInspect() Option {
	return options.NoError(func(c *Config) { c.Inspect = true })
}

// WithDebug enables diagnostics-only debug mode.
func WithDebug() Option {
	return options.NoError(func(c *Config) { c.Debug = true })
}

// WithNodeCount sets the node count a mounted trie blob must match.
func WithNodeCount(n int) Option {
	return options.NoError(func(c *Config) { c.NodeCount = n })
}

// WithBlockSizes overrides the rank directory's L1/L2 block sizes. L1 must
// be a positive multiple of L2.
func WithBlockSizes(l1, l2 uint32) Option {
	return options.NoError(func(c *Config) {
		c.L1 = l1
		c.L2 = l2
	})
}

// Width returns the letter alphabet width in bits (6 or 8).
func (c *Config) Width() int {
	if c.UseCodec6 {
		return 6
	}

	return 8
}

// Layout returns the rank directory layout this config selects.
func (c *Config) Layout() format.RankLayout {
	if c.SelectSearch {
		return format.SelectAsRankLayout
	}

	return format.PopcountLayout
}

// CheckNodeCount returns errs.ErrNodeCountMismatch if nodeCount disagrees
// with the node count this Config was constructed with.
func (c *Config) CheckNodeCount(nodeCount int) error {
	if c.NodeCount != nodeCount {
		return fmt.Errorf("config: configured nodecount=%d, blob has %d: %w", c.NodeCount, nodeCount, errs.ErrNodeCountMismatch)
	}

	return nil
}
