// Package errs defines the sentinel errors shared by the domaindict packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", err) for context; callers
// compare against the sentinel with errors.Is.
package errs

import "errors"

// Domain errors: inputs that violate a build- or decode-time invariant.
var (
	// ErrLexOrder is returned when TrieBuilder.Insert receives a word that
	// does not lexically follow the previously inserted word.
	ErrLexOrder = errors.New("domaindict: input not in lexical order")

	// ErrMissingDelimiter is returned when an inserted word has no tag
	// delimiter separating its host bytes from the ordinal digits after them.
	ErrMissingDelimiter = errors.New("domaindict: missing tag delimiter in input")

	// ErrAlphabet is returned when a byte outside the configured code unit
	// alphabet is encountered during encode or decode.
	ErrAlphabet = errors.New("domaindict: byte outside code unit alphabet")

	// ErrBitmapHeader is returned when a tag bitmap's header popcount
	// disagrees with the number of group words that follow it.
	ErrBitmapHeader = errors.New("domaindict: tag bitmap header/group count mismatch")
)

// Index errors: a position or count strayed outside the addressable range.
var (
	// ErrOutOfRange is returned by pos0 and by letter-stream reads that
	// would read past the end of their owning blob.
	ErrOutOfRange = errors.New("domaindict: bit position out of range")

	// ErrIterationBudget is returned when pos0 exhausts its internal
	// stride budget without finding the requested zero.
	ErrIterationBudget = errors.New("domaindict: pos0 iteration budget exhausted")
)

// Config errors: the config record disagrees with what the blobs encode.
var (
	// ErrNodeCountMismatch is returned when the configured node count does
	// not match the node count implied by a trie blob's length.
	ErrNodeCountMismatch = errors.New("domaindict: configured node count disagrees with trie blob")

	// ErrBlockSize is returned when L1 is not a positive multiple of L2.
	ErrBlockSize = errors.New("domaindict: L1 must be a positive multiple of L2")

	// ErrInvalidWidth is returned when a letter width other than 6 or 8
	// bits is requested.
	ErrInvalidWidth = errors.New("domaindict: letter width must be 6 or 8 bits")
)
