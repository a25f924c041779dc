package pool

import "sync"

// Slice pools for efficient reuse of typed scratch slices.
// These pools reduce allocations for the two hot scratch buffers the trie
// reader and tag codec repeatedly need: a letter-run word built during
// radix-word reconstruction, and an ordinal list built during tag-bitmap
// decode.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetUint32Slice retrieves a zero-length, pre-capacity uint32 slice from the
// pool. The caller appends to it and must call the returned cleanup function
// (typically with defer) to return it to the pool.
//
// Example:
//
//	word, cleanup := pool.GetUint32Slice()
//	defer cleanup()
//	*word = append(*word, letter)
func GetUint32Slice() (*[]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	*ptr = (*ptr)[:0]

	return ptr, func() { uint32SlicePool.Put(ptr) }
}

// GetIntSlice retrieves a zero-length, pre-capacity int slice from the pool.
// The caller appends to it and must call the returned cleanup function
// (typically with defer) to return it to the pool.
func GetIntSlice() (*[]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	*ptr = (*ptr)[:0]

	return ptr, func() { intSlicePool.Put(ptr) }
}
