// Package rank implements the two-level summary over the trie's LOUDS
// child-count bit stream (spec §4.2): rank(which, x) counts the number of
// `which`-bits in [0, x] and select(which, y) returns the position of the
// y-th `which`-bit (both 1-indexed in y; see DESIGN.md for why).
//
// Two layouts are supported, selected at build time via format.RankLayout:
//
//   - PopcountLayout stores cumulative one-counts at L1 and L2 block
//     boundaries; rank is an O(1) table lookup plus a partial-block
//     popcount, and select binary-searches over rank.
//   - SelectAsRankLayout stores the absolute position of every L2-th zero,
//     making select(0, y) an O(1) lookup followed by a bounded Pos0 walk.
//     rank(1, ·) is not required by the trie and is unimplemented under
//     this layout (spec §9, open question 1).
//
// Both layouts read the trie's LOUDS stream through a bitpack.Buffer and
// store their own directory bytes in a second bitpack.Buffer/Writer pair,
// mirroring the "bit buffer as the only storage primitive" design of the
// rest of this module.
package rank
