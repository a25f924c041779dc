// Package compress provides compression and decompression codecs for the
// byte blobs this module distributes (trie data, rank-directory data, tag
// catalog).
//
// Compression is a pure byte-transform layered outside the core: a builder
// may run a blob through Compress before writing it to disk, and a caller
// mounting a dictionary runs the inverse Decompress before handing the
// bytes to bitpack.NewBuffer. The core trie and rank directory never see a
// compressed byte; disk I/O and file splitting stay the external layer's
// job (spec §1).
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no-op, for blobs already small enough
//     or distributed uncompressed
//   - Zstd (format.CompressionZstd): best ratio, moderate speed; good for
//     cold storage of the built dictionary
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression, for edge/
//     serverless mount paths where decompression latency dominates
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "trie data")
//	compressed, err := codec.Compress(tdBytes)
//	...
//	original, err := codec.Decompress(compressed)
//
// # Thread safety
//
// All codecs in this package are stateless value types safe for concurrent
// use; pooled encoder/decoder instances inside ZstdCompressor are
// synchronized via sync.Pool.
package compress
