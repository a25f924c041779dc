// Package bitpack implements the fixed-width bit-stream primitives the
// succinct trie is built from: a random-access bit reader (Buffer) over a
// stream of 16-bit code units, and a paired sequential bit writer (Writer).
//
// Every method works in terms of absolute bit positions; the underlying
// code-unit width is fixed at 16 bits regardless of the trie's letter width
// (6 or 8 bits), matching spec §4.1. Bit ordering is MSB-first within each
// code unit: Get(0, 1) returns the most significant bit of the first unit.
package bitpack
