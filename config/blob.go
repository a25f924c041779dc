package config

import (
	"fmt"

	"github.com/domaindict/domaindict/compress"
	"github.com/domaindict/domaindict/format"
)

// Codec returns the compress.Codec for compressing/decompressing one of
// this module's distributed blobs (trie data, rank-directory data, tag
// catalog) before/after it crosses the disk-I/O boundary spec.md §1
// scopes out of the core.
func Codec(compressionType format.CompressionType, target string) (compress.Codec, error) {
	return compress.CreateCodec(compressionType, target)
}

// CompressBlob compresses data for distribution under compressionType.
// format.CompressionNone returns data unchanged.
func CompressBlob(data []byte, compressionType format.CompressionType, target string) ([]byte, error) {
	codec, err := Codec(compressionType, target)
	if err != nil {
		return nil, fmt.Errorf("config: compressing %s: %w", target, err)
	}

	return codec.Compress(data)
}

// DecompressBlob is the inverse of CompressBlob.
func DecompressBlob(data []byte, compressionType format.CompressionType, target string) ([]byte, error) {
	codec, err := Codec(compressionType, target)
	if err != nil {
		return nil, fmt.Errorf("config: decompressing %s: %w", target, err)
	}

	return codec.Decompress(data)
}
