package utils

import (
	"math/bits"
)

// Initially inspired from https://github.com/kelindar/bitmap Thank you for using the MIT license!
// Trimmed to a fixed-size set of vertex indices.

type Bitmap []uint64

// NewBitmap can hold bits [0, size).
func NewBitmap(size int) Bitmap {
	return make(Bitmap, (size+63)>>6)
}

// Inline-able, returns false if out of range.
func (bitmap Bitmap) Set(x uint32) bool {
	idx := int(x >> 6)
	if idx >= len(bitmap) {
		return false
	}
	bitmap[idx] |= (1 << (x % 64))
	return true
}

func (bitmap Bitmap) IsSet(x uint32) bool {
	idx := int(x >> 6)
	if idx >= len(bitmap) {
		return false
	}
	return bitmap[idx]&(1<<(x%64)) != 0
}

func (bitmap Bitmap) Count() (n int) {
	for i := range bitmap {
		n += bits.OnesCount64(bitmap[i])
	}
	return n
}

// Members lists the set bits in ascending order.
func (bitmap Bitmap) Members() []uint32 {
	out := make([]uint32, 0, bitmap.Count())
	for i, word := range bitmap {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			out = append(out, uint32(i<<6+tz))
			word &= word - 1
		}
	}
	return out
}
