package vb64

import (
	"testing"

	"golang.org/x/exp/rand"
)

const stdTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// TestCmp tests the byte-wide comparison masks the lookups are
// built from.
func TestCmp(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := uint(i)
			y := uint(j)

			var want byte
			if x >= y {
				want = 0xff
			}

			// x >= y -> 0xff
			// x <  y -> 0x00
			got := byte((y - x - 1) >> 8)
			if got != want {
				t.Fatalf("expected %2x, got %2x", want, got)
			}

			// Now test the reverse.
			want = ^want

			// x >= y -> 0x00
			// x <  y -> 0xff
			got = byte((x - y) >> 8)
			if got != want {
				t.Fatalf("expected %2x, got %2x", want, got)
			}
		}
	}
}

// TestLookup tests lookup and revLookup over the alphabet.
func TestLookup(t *testing.T) {
	for i := 0; i < len(stdTable); i++ {
		b64 := lookup(uint(i))
		if b64 != stdTable[i] {
			t.Fatalf("#%d: expected %q, got %q", i, stdTable[i], b64)
		}
		bin := revLookup(uint(b64))
		if bin != byte(i) {
			t.Fatalf("#%d: expected %d got %d", i, i, bin)
		}
	}
}

// TestRevLookup tests revLookup over its entire domain.
func TestRevLookup(t *testing.T) {
	var m [256]byte
	for i := range m {
		m[i] = 0xff
	}
	for i := 0; i < len(stdTable); i++ {
		m[stdTable[i]] = byte(i)
	}
	for i := 0; i < 256; i++ {
		c := m[i]
		ok := c != 0xff
		switch bin := revLookup(uint(i)); {
		case ok && bin != c:
			t.Fatalf("#%d: expected %d got %d", i, c, bin)
		case !ok && bin != 0xff:
			t.Fatalf("#%d: got %#2x", i, bin)
		}
	}
}

// TestLookupSWAR6 tests lookupSWAR6 lane-for-lane against
// lookup.
func TestLookupSWAR6(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1<<21; i++ {
		u := rng.Uint64() & 0xffff_ffff_ffff
		// Randomize bits [16:0] to ensure SWAR6 ignores them.
		v := lookupSWAR6(u<<16 | rng.Uint64()&0xffff)

		for k := 0; k < 8; k++ {
			got := byte(v >> (8 * k))
			want := lookup(uint(u>>(42-6*k)) & 0x3f)
			if got != want {
				t.Fatalf("%#x lane %d: expected %q, got %q", u, k, want, got)
			}
		}
	}
}

var sinkB byte

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkB = lookup(uint(i % len(stdTable)))
	}
}

func BenchmarkRevLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := stdTable[i%len(stdTable)]
		sinkB = revLookup(uint(c))
	}
}
