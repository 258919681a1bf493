package vb64

import (
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

// TestEncodeBlockKernels tests that both encode kernels agree
// with each other and with encoding/base64 on random batches.
func TestEncodeBlockKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]byte, encBlockSrc)
	wide := make([]uint16, encBlockDst)
	compat := make([]uint16, encBlockDst)
	for i := 0; i < 10000; i++ {
		rng.Read(src)

		encodeBlockWide(wide, src)
		encodeBlockCompat(compat, src)
		if diff := cmp.Diff(compat, wide); diff != "" {
			t.Fatalf("#%d: kernel mismatch: %s", i, diff)
		}

		want := base64.StdEncoding.EncodeToString(src)
		if got := narrow(wide); got != want {
			t.Fatalf("#%d: expected %q, got %q", i, want, got)
		}
	}
}

// TestDecodeBlockKernels tests that both decode kernels agree
// on random valid batches.
func TestDecodeBlockKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	raw := make([]byte, decBlockDst)
	src := make([]uint16, decBlockSrc)
	wide := make([]byte, decBlockDst)
	compat := make([]byte, decBlockDst)
	for i := 0; i < 10000; i++ {
		rng.Read(raw)
		encodeBlockCompat(src, raw)

		if !decodeBlockWide(wide, src) {
			t.Fatalf("#%d: wide kernel rejected valid input", i)
		}
		if !decodeBlockCompat(compat, src) {
			t.Fatalf("#%d: compat kernel rejected valid input", i)
		}
		if diff := cmp.Diff(raw, wide); diff != "" {
			t.Fatalf("#%d: wide mismatch: %s", i, diff)
		}
		if diff := cmp.Diff(raw, compat); diff != "" {
			t.Fatalf("#%d: compat mismatch: %s", i, diff)
		}
	}
}

// TestDecodeBlockInvalid tests that one bad unit anywhere in a
// batch fails both decode kernels.
func TestDecodeBlockInvalid(t *testing.T) {
	bad := []uint16{' ', '=', 0x00, 0x7f, 0xe9, 0x100, 'A' + 0x100, 0x2603}

	raw := make([]byte, decBlockDst)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	good := make([]uint16, decBlockSrc)
	encodeBlockCompat(good, raw)

	src := make([]uint16, decBlockSrc)
	dst := make([]byte, decBlockDst)
	for pos := 0; pos < decBlockSrc; pos++ {
		for _, b := range bad {
			copy(src, good)
			src[pos] = b
			if decodeBlockWide(dst, src) {
				t.Fatalf("pos %d: wide kernel accepted %#x", pos, b)
			}
			if decodeBlockCompat(dst, src) {
				t.Fatalf("pos %d: compat kernel accepted %#x", pos, b)
			}
		}
	}
}

var (
	sinkU []uint16
	sinkP []byte
)

func BenchmarkEncodeBlock(b *testing.B) {
	src := make([]byte, encBlockSrc)
	dst := make([]uint16, encBlockDst)
	for i := 0; i < b.N; i++ {
		encodeBlock(dst, src)
	}
	sinkU = dst
}

func BenchmarkDecodeBlock(b *testing.B) {
	raw := make([]byte, decBlockDst)
	src := make([]uint16, decBlockSrc)
	encodeBlockCompat(src, raw)
	dst := make([]byte, decBlockDst)
	for i := 0; i < b.N; i++ {
		if !decodeBlock(dst, src) {
			b.Fatal("rejected valid input")
		}
	}
	sinkP = dst
}
