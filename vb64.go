package vb64

import "errors"

// ErrCorrupt is returned when the Base64-encoded input is
// incorrect.
var ErrCorrupt = errors.New("vb64: input is corrupt")

// ErrShortDst is returned when the destination buffer is
// smaller than the transcoded input requires.
var ErrShortDst = errors.New("vb64: destination buffer too small")

// Std transcodes the standard padded Base64 encoding, deferring
// residual slices to encoding/base64.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var Std = &Codec{fallback: stdlibFallback{}}

// Codec is a batched Base64 transcoder. It is stateless and
// safe for concurrent use on disjoint buffers.
//
// See the package docs for a comparison with encoding/base64.
type Codec struct {
	fallback Fallback
}

// NewCodec returns a Codec that defers residual slices to fb
// instead of the default encoding/base64-backed fallback.
func NewCodec(fb Fallback) *Codec {
	return &Codec{fallback: fb}
}

// EncodedLen returns the number of code units produced when
// encoding n source bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes produced when
// decoding n code units.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) code units
// to dst.
//
// It returns ErrShortDst, writing nothing, if dst is smaller
// than that; no other failure is possible.
func (c *Codec) Encode(dst []uint16, src []byte) (int, error) {
	if len(dst) < EncodedLen(len(src)) {
		return 0, ErrShortDst
	}
	if len(src) == 0 {
		return 0, nil
	}

	var n int
	if len(src) >= encMinSrc {
		for len(src) >= encLoopSrc {
			encodeBlock(dst, src)
			src = src[encBlockSrc:]
			dst = dst[encBlockDst:]
			n += encBlockDst
		}
	}
	return n + c.fallback.Encode(dst, src), nil
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst. It returns the number of bytes written.
//
// Decode is all-or-nothing: on any error the count is zero and
// bytes already written to dst must not be used. Invalid
// characters detected in a batch are reported as ErrCorrupt;
// errors from the fallback on the residual slice (truncated
// lengths, misplaced padding) are returned verbatim.
func (c *Codec) Decode(dst []byte, src []uint16) (int, error) {
	var n int
	for len(src) >= decMinSrc && len(dst) >= decMinDst {
		if !decodeBlock(dst, src) {
			return 0, ErrCorrupt
		}
		src = src[decBlockSrc:]
		dst = dst[decBlockDst:]
		n += decBlockDst
	}

	m, err := c.fallback.Decode(dst, src)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// TryEncode encodes src into dst, reporting the number of code
// units written and whether encoding succeeded.
func (c *Codec) TryEncode(dst []uint16, src []byte) (int, bool) {
	n, err := c.Encode(dst, src)
	return n, err == nil
}

// TryDecode decodes src into dst, reporting the number of bytes
// written and whether decoding succeeded.
func (c *Codec) TryDecode(dst []byte, src []uint16) (int, bool) {
	n, err := c.Decode(dst, src)
	return n, err == nil
}

// EncodeToString encodes src.
func (c *Codec) EncodeToString(src []byte) string {
	dst := make([]uint16, EncodedLen(len(src)))
	c.Encode(dst, src) // cannot fail: dst is exactly sized
	out := make([]byte, len(dst))
	for i, u := range dst {
		out[i] = byte(u)
	}
	return string(out)
}

// DecodeString decodes s, treating each byte as one code unit.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	src := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		src[i] = uint16(s[i])
	}
	dst := make([]byte, DecodedLen(len(s)))
	n, err := c.Decode(dst, src)
	return dst[:n], err
}
