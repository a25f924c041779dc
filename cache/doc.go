// Package cache implements the range-keyed LFU radix-word cache (spec
// §4.8): put(lo, hi, value, frequency) stores a descriptor against the
// half-open trie-index range [lo, hi), and find(n, cursor) returns the
// descriptor of whichever stored range contains n, plus a cursor hint that
// lets the next find on the same region skip the scan.
//
// Put dedups by exact [lo,hi) range using an xxhash64 bucket, the same
// "hash then verify" shape the teacher's index-map collision tracking
// uses (SPEC_FULL.md, "Wiring detail: xxhash in the radix cache"). Find is
// a containment query (lo <= n < hi), not an exact-key lookup, so on a
// cursor miss it falls back to a linear scan of the small entry set — the
// cache only ever holds as many entries as its construction-time capacity.
//
// RadixCache is not safe for concurrent use; spec §4.8 calls it
// single-threaded, and spec §7 specifies that it swallows all of its own
// errors, signaling a miss rather than propagating anything.
package cache
