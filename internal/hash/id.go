package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Range hashes a half-open trie-index range [lo, hi) to a uint64 bucket
// key, the same way the teacher's metric-name lookup turns a string
// identity into a uint64 map key via xxhash. The radix cache uses this to
// avoid keying its table on a two-field struct.
func Range(lo, hi uint32) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], lo)
	binary.LittleEndian.PutUint32(buf[4:8], hi)

	return xxhash.Sum64(buf[:])
}
