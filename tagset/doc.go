// Package tagset implements the two-level variable-length tag bitmap
// (spec §3, §4.5): the encoding a trie final node uses to store the set of
// blocklist ordinals associated with its key.
//
// A set S subset of [0, 256) is encoded as a 16-bit header H, where bit
// (15-g) marks that group g (g = k/16) has at least one member, followed
// by one 16-bit group word per header bit set, ascending by group, each
// word's bit (15-p) marking that k = 16g+p is a member. Both the header
// and every group word are stored big-endian.
//
// PackUnits/UnpackUnits additionally split that byte encoding into the
// trie's W-bit letter alphabet (6 or 8 bits per code unit), since a flag
// child's letter field is only W bits wide regardless of how the bitmap
// bytes are organized. OptFlags is the small-set shortcut: sets of at most
// three (8-bit codec) or four (6-bit codec) ordinals skip the bitmap
// entirely and are stored as a raw ordinal list.
package tagset
