package vb64

import (
	"encoding/binary"
	"math/bits"
)

// Batch geometry. One encode batch consumes 24 source bytes and
// produces 32 code units; one decode batch consumes 32 code
// units and produces 24 bytes.
const (
	encBlockSrc = 24
	encBlockDst = 32
	// The batched encoder is entered at 32 source bytes and
	// keeps iterating down to a fringe of at least 4, so the
	// scalar tail is never empty once the fast path runs.
	encMinSrc  = 32
	encLoopSrc = 28

	decBlockSrc = 32
	decBlockDst = 24
	// A batch consumes 32 units, so requiring 34 before each
	// iteration leaves at least the last two units -- the only
	// positions where '=' may legally appear -- to the scalar
	// tail. 32 would feed padding to revLookup and reject valid
	// input.
	decMinSrc = 34
	decMinDst = 32
)

// The batch kernels. decodeBlock reports whether every unit in
// the batch is a valid alphabet character; dst contents are
// unspecified when it reports false.
//
// Callers guarantee len(src) and len(dst) cover one full batch.
var (
	encodeBlock = encodeBlockCompat
	decodeBlock = decodeBlockCompat
)

func init() {
	// The wide kernels lean on full-width uint64 shifts, which
	// 32-bit targets emulate a word at a time. Same split the
	// standard library makes for its decode hot loop.
	if bits.UintSize == 64 {
		encodeBlock = encodeBlockWide
		decodeBlock = decodeBlockWide
	}
}

// encodeBlockWide converts 24 source bytes into 32 code units
// using four 6-byte SWAR words.
func encodeBlockWide(dst []uint16, src []byte) {
	_ = src[23]
	_ = dst[31]

	w0 := lookupSWAR6(binary.BigEndian.Uint64(src[0:8]))
	w1 := lookupSWAR6(binary.BigEndian.Uint64(src[6:14]))
	w2 := lookupSWAR6(binary.BigEndian.Uint64(src[12:20]))
	// The last word has no spare byte on the right, so load
	// flush against the batch edge and shift the two stale
	// bytes off the bottom.
	w3 := lookupSWAR6(binary.BigEndian.Uint64(src[16:24]) << 16)

	widen8(dst[0:8], w0)
	widen8(dst[8:16], w1)
	widen8(dst[16:24], w2)
	widen8(dst[24:32], w3)
}

// widen8 spreads the 8 little-endian bytes of v into 8 code
// units with zero high bytes.
func widen8(dst []uint16, v uint64) {
	_ = dst[7]
	dst[0] = uint16(v & 0xff)
	dst[1] = uint16(v >> 8 & 0xff)
	dst[2] = uint16(v >> 16 & 0xff)
	dst[3] = uint16(v >> 24 & 0xff)
	dst[4] = uint16(v >> 32 & 0xff)
	dst[5] = uint16(v >> 40 & 0xff)
	dst[6] = uint16(v >> 48 & 0xff)
	dst[7] = uint16(v >> 56)
}

// decodeBlockWide converts 32 code units into 24 bytes.
func decodeBlockWide(dst []byte, src []uint16) bool {
	_ = src[31]
	_ = dst[23]

	// Any unit outside the single-byte range fails the batch
	// before its low byte can alias an alphabet character.
	var hi uint16
	for _, u := range src[:32] {
		hi |= u
	}
	if hi&0xff00 != 0 {
		return false
	}

	c0, f0 := decodeSWAR8(src[0:8])
	c1, f1 := decodeSWAR8(src[8:16])
	c2, f2 := decodeSWAR8(src[16:24])
	c3, f3 := decodeSWAR8(src[24:32])
	if f0|f1|f2|f3 == 0xff {
		return false
	}

	// Each word carries six payload bytes; the two junk bytes
	// under them are overwritten by the next store.
	binary.BigEndian.PutUint64(dst[0:8], c0)
	binary.BigEndian.PutUint64(dst[6:14], c1)
	binary.BigEndian.PutUint64(dst[12:20], c2)
	dst[18] = byte(c3 >> 56)
	dst[19] = byte(c3 >> 48)
	dst[20] = byte(c3 >> 40)
	dst[21] = byte(c3 >> 32)
	dst[22] = byte(c3 >> 24)
	dst[23] = byte(c3 >> 16)
	return true
}

// decodeSWAR8 packs eight decoded units into bits [64:16] of a
// word. An invalid character sets every bit of failed.
//
// Units must already be known to fit in a byte.
func decodeSWAR8(src []uint16) (c uint64, failed byte) {
	_ = src[7]

	c0 := revLookup(uint(src[0]))
	c1 := revLookup(uint(src[1]))
	c2 := revLookup(uint(src[2]))
	c3 := revLookup(uint(src[3]))
	c4 := revLookup(uint(src[4]))
	c5 := revLookup(uint(src[5]))
	c6 := revLookup(uint(src[6]))
	c7 := revLookup(uint(src[7]))

	c = uint64(c0)<<58 |
		uint64(c1)<<52 |
		uint64(c2)<<46 |
		uint64(c3)<<40 |
		uint64(c4)<<34 |
		uint64(c5)<<28 |
		uint64(c6)<<22 |
		uint64(c7)<<16

	failed = c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7
	return c, failed
}

// encodeBlockCompat is the word-size-independent encode kernel.
// It produces exactly the same output as encodeBlockWide.
func encodeBlockCompat(dst []uint16, src []byte) {
	_ = src[23]
	_ = dst[31]
	for i, j := 0, 0; i < encBlockSrc; i, j = i+3, j+4 {
		v := uint(src[i])<<16 | uint(src[i+1])<<8 | uint(src[i+2])
		dst[j+0] = uint16(lookup(v >> 18 & 0x3f))
		dst[j+1] = uint16(lookup(v >> 12 & 0x3f))
		dst[j+2] = uint16(lookup(v >> 6 & 0x3f))
		dst[j+3] = uint16(lookup(v & 0x3f))
	}
}

// decodeBlockCompat is the word-size-independent decode kernel.
// It produces exactly the same output as decodeBlockWide.
func decodeBlockCompat(dst []byte, src []uint16) bool {
	_ = src[31]
	_ = dst[23]
	var hi uint16
	var failed byte
	for i, j := 0, 0; i < decBlockSrc; i, j = i+4, j+3 {
		u0, u1, u2, u3 := src[i], src[i+1], src[i+2], src[i+3]
		hi |= u0 | u1 | u2 | u3

		c0 := revLookup(uint(u0) & 0xff)
		c1 := revLookup(uint(u1) & 0xff)
		c2 := revLookup(uint(u2) & 0xff)
		c3 := revLookup(uint(u3) & 0xff)
		failed |= c0 | c1 | c2 | c3

		dst[j+0] = byte(c0<<2 | c1>>4)
		dst[j+1] = byte(c1<<4 | c2>>2)
		dst[j+2] = byte(c2<<6 | c3)
	}
	return hi&0xff00 == 0 && failed != 0xff
}
