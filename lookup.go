package vb64

// lookup converts the 6-bit value c to its Base64 character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func lookup(c uint) byte {
	// Start with an initial guess that c is in [0, 25], making
	// the shift 'A' (65), then patch the shift once per later
	// alphabet range:
	//    c in [26, 51]: 'a' - (26+65)  = 6
	//    c in [52, 61]: '0' - (52+71)  = -75
	//    c == 62:       '+' - (62-4)   = -15
	//    c == 63:       '/' - (63-19)  = 3
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// revLookup converts the Base64 character c to its 6-bit binary
// value.
//
// c must be in [0, 255]. If the character is not in the
// alphabet ('=' included) revLookup returns 0xff.
func revLookup(c uint) (r byte) {
	// NB. This function is written like this so that the
	// compiler will inline it.

	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z':
	//     s = -71
	// case c >= '0' && c <= '9':
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then the input is corrupt.
	//
	// Since s is one of {0, 191, 185, 4, 19, 16}, shift off bits
	// [8:0] (which are allowed to be non-zero) and check [16:8].
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// lookupSWAR6 converts the 6 source bytes in bits [64:16] of u
// into 8 Base64 bytes, returned in little-endian lane order.
// Bits [16:0] of u are ignored.
//
// See http://0x80.pl/articles/avx512-foundation-base64.html
func lookupSWAR6(u uint64) uint64 {
	// Repack the six 8-bit source bytes ABCDEF into the layout
	// DEF.ABC. so that each half holds one 24-bit group with a
	// spare byte of shift room.
	u0 := (u << 24) & 0xff_ff_ff_00_00_00_00_00
	u1 := (u >> 32) & 0x00_00_00_00_ff_ff_ff_00
	v := u0 | u1

	// Extract the four 6-bit fields of each 24-bit group into
	// their own lanes:
	//
	//    ..FFFFFF ..EEEEFF ..DDEEEE ..DDDDDD
	//    ..CCCCCC ..BBBBCC ..AABBBB ..AAAAAA
	var c uint64
	c |= (v >> 26) & 0x00_00_00_3f_00_00_00_3f
	c |= (v >> 12) & 0x00_00_3f_00_00_00_3f_00
	c |= (v << 2) & 0x00_3f_00_00_00_3f_00_00
	c |= (v << 16) & 0x3f_00_00_00_3f_00_00_00

	// Apply lookup's range corrections to all eight lanes at
	// once. Each comparison leaves 0x80 in lanes where the 6-bit
	// value reaches the next alphabet range.
	const msb = 0x8080808080808080

	// if c[i] >= 26 { s[i] = 6 }
	c0 := (c + 0x6666666666666666) & msb
	c0 -= c0 >> 7
	c0 &= 0x0606060606060606

	// if c[i] >= 52 { s[i] = 187&0x7f }
	c1 := (c + 0x4c4c4c4c4c4c4c4c) & msb
	c1msb := c1
	c1 -= c1 >> 7
	c1 &= 0x3b3b3b3b3b3b3b3b

	// if c[i] >= 62 { s[i] = 17 }
	c2 := (c + 0x4242424242424242) & msb
	c2 -= c2 >> 7
	c2 &= 0x1111111111111111

	// if c[i] >= 63 { s[i] = 29 }
	c3 := (c + 0x4141414141414141) & msb
	c3 -= c3 >> 7
	c3 &= 0x1d1d1d1d1d1d1d1d

	s := 0x4141414141414141 ^ c0 ^ c1 ^ c2 ^ c3

	return (c + s) ^ c1msb
}
