package vb64

import (
	"bytes"
	"encoding/base64"
)

// Fallback is the scalar reference codec consulted for inputs
// below the batching thresholds and for the residual slices the
// batched loops leave behind. Its error semantics -- padding
// correctness, truncated lengths -- are authoritative for those
// slices.
//
// Encode is only ever handed fewer source bytes than one full
// batch, with dst capacity already verified, so it cannot fail.
// Decode may see arbitrarily long suffixes when the caller's
// output buffer runs out before the input does.
type Fallback interface {
	Encode(dst []uint16, src []byte) int
	Decode(dst []byte, src []uint16) (int, error)
}

// stdlibFallback adapts encoding/base64 to 16-bit code units.
type stdlibFallback struct{}

const (
	// Encode tails are at most encMinSrc-1 bytes.
	fbEncMax = (encMinSrc - 1 + 2) / 3 * 4

	// Narrowing scratch for decode, a multiple of four so chunk
	// edges stay on quantum boundaries.
	fbChunk = 512
)

func (stdlibFallback) Encode(dst []uint16, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	var buf [fbEncMax]byte
	n := base64.StdEncoding.EncodedLen(len(src))
	base64.StdEncoding.Encode(buf[:n], src)
	for i, b := range buf[:n] {
		dst[i] = uint16(b)
	}
	return n
}

func (stdlibFallback) Decode(dst []byte, src []uint16) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	// Exact required capacity: a quarter of the input decodes
	// to three bytes, less one per trailing padding character.
	need := len(src) / 4 * 3
	if len(src)%4 == 0 {
		if src[len(src)-1] == '=' {
			need--
			if src[len(src)-2] == '=' {
				need--
			}
		}
	}
	if len(dst) < need {
		return 0, ErrShortDst
	}

	var buf [fbChunk]byte
	var n int
	for len(src) > 0 {
		m := len(src)
		final := true
		if m > fbChunk {
			m, final = fbChunk, false
		}

		var hi uint16
		for i, u := range src[:m] {
			buf[i] = byte(u)
			hi |= u
		}
		if hi&0xff00 != 0 {
			return 0, ErrCorrupt
		}
		if !final && bytes.IndexByte(buf[:m], '=') >= 0 {
			// Padding is only legal in the final quantum, and
			// the final quantum is always in the final chunk.
			return 0, ErrCorrupt
		}

		w, err := base64.StdEncoding.Decode(dst[n:], buf[:m])
		if err != nil {
			return 0, err
		}
		n += w
		src = src[m:]
	}
	return n, nil
}
