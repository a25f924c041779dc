// Package trie implements the succinct LOUDS-style hostname trie: the
// builder that folds a lex-sorted stream of encoded host+tag inputs into a
// level-order bit stream, and the frozen reader that walks that stream
// without ever materializing a pointer-based tree.
//
// A built trie is exactly two byte blobs: the trie blob (a LOUDS child-count
// stream immediately followed by a fixed-width letter stream, addressed by
// absolute bit offset into the same buffer) and the rank-directory blob that
// indexes the LOUDS portion. Node 0 of the letter stream is the true root;
// the LOUDS stream's leading "10" is a synthetic super-root that exists only
// to give the root a uniform select(0, i+1) addressing scheme.
package trie
