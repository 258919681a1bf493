// Package vb64 implements batched Base64 encoding and decoding,
// as specified by RFC 4648, for text held as 16-bit code units.
//
// The hot paths transcode fixed-size batches (24 bytes to 32
// code units when encoding, 32 code units to 24 bytes when
// decoding) with word-level bit manipulation instead of
// per-character table lookups. Inputs below the batching
// thresholds, residual fringes, and everything involving '='
// padding are handed to a scalar reference codec, which is also
// the authority for error semantics on those slices.
//
// # Comparison to encoding/base64
//
// Only the canonical padded standard alphabet is supported:
// A-Z, a-z, 0-9, '+', '/' and '=' padding, no line breaks.
//
// Unlike encoding/base64, whitespace is an invalid character.
// Callers decoding text that may contain newlines must filter
// it first, for example with NewlineFilteringReader.
//
// Unlike encoding/base64, Decode never reports partial output:
// any invalid input fails the whole call with zero code units
// or bytes written. Output produced before the failure was
// detected must not be used.
//
// Destination and source buffers must not overlap.
package vb64
