// Package tagcodec converts between textual host strings and the
// fixed-width code unit stream the trie's letter field stores (spec §3,
// §4.5).
//
// Two widths are supported: a 6-bit codec over a restricted 64-symbol
// alphabet (lowercase letters, digits, hyphen, plus the two reserved
// symbols below), and an 8-bit codec that passes ASCII bytes through
// unchanged. Both codecs reserve two symbols that never occur in an
// ordinary host string:
//
//   - the label separator, which stands in for '.'
//   - the tag delimiter, which separates the host bytes of a trie builder
//     input word from the ordinal digits that follow them
//
// Encode/Decode operate on a string taken at face value. The
// EncodeLabelSeparated/DecodeLabelSeparated pair additionally reverses the
// string, matching the trie's convention of storing hosts reversed so
// that common TLDs sit near the root (spec §3, §4.6, §4.7).
package tagcodec
