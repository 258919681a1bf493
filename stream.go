// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vb64

import (
	"crypto/subtle"
	"io"
)

// streamBuf is the wire-side buffer size, a multiple of four so
// chunks stay on quantum boundaries.
const streamBuf = 1024

type encoder struct {
	err  error
	c    *Codec
	w    io.Writer
	buf  [3]byte // buffered data waiting to be encoded
	nbuf int     // number of bytes in buf
	wide [streamBuf]uint16
	out  [streamBuf]byte
}

// NewEncoder returns a Base64 stream encoder.
//
// Data written to the returned WriteCloser is encoded with c
// and written to w as ASCII bytes. Base64 operates in 3-byte
// blocks, so when finished writing, the caller must Close the
// returned encoder to flush any partially written block.
func NewEncoder(c *Codec, w io.Writer) io.WriteCloser {
	return &encoder{c: c, w: w}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// Leading fringe.
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return
		}
		if e.err = e.flush(e.buf[:3]); e.err != nil {
			return n, e.err
		}
		e.nbuf = 0
	}

	// Large interior chunks.
	for len(p) >= 3 {
		nn := len(e.out) / 4 * 3
		if nn > len(p) {
			nn = len(p)
			nn -= nn % 3
		}
		if e.err = e.flush(p[:nn]); e.err != nil {
			return n, e.err
		}
		n += nn
		p = p[nn:]
	}

	// Trailing fringe.
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return
}

// flush encodes one 3-aligned (or final) chunk and writes it
// out, narrowed back to bytes.
func (e *encoder) flush(p []byte) error {
	nc, err := e.c.Encode(e.wide[:], p)
	if err != nil {
		return err
	}
	for i, u := range e.wide[:nc] {
		e.out[i] = byte(u)
	}
	_, err = e.w.Write(e.out[:nc])
	return err
}

// Close flushes any pending output from the encoder.
// It is an error to call Write after calling Close.
func (e *encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		e.err = e.flush(e.buf[:e.nbuf])
		e.nbuf = 0
	}
	return e.err
}

type decoder struct {
	err     error
	readErr error // error from r.Read
	c       *Codec
	r       io.Reader
	buf     [streamBuf]byte // leftover input
	nbuf    int
	wide    [streamBuf]uint16
	out     []byte // leftover decoded output
	outbuf  [streamBuf / 4 * 3]byte
}

// NewDecoder constructs a Base64 stream decoder.
//
// Bytes read from r are decoded with c. To exclude the newline
// characters '\r' and '\n', wrap r with NewlineFilteringReader.
func NewDecoder(c *Codec, r io.Reader) io.Reader {
	return &decoder{c: c, r: r}
}

func (d *decoder) Read(p []byte) (n int, err error) {
	// Use leftover decoded output from the last read.
	if len(d.out) > 0 {
		n = copy(p, d.out)
		d.out = d.out[n:]
		return n, nil
	}

	if d.err != nil {
		return 0, d.err
	}

	// Refill buffer to at least one quantum.
	for d.nbuf < 4 && d.readErr == nil {
		nn := len(p) / 3 * 4
		if nn < 4 {
			nn = 4
		}
		if nn > len(d.buf) {
			nn = len(d.buf)
		}
		nn, d.readErr = d.r.Read(d.buf[d.nbuf:nn])
		d.nbuf += nn
	}

	if d.nbuf < 4 {
		d.err = d.readErr
		if d.err == io.EOF && d.nbuf > 0 {
			d.err = io.ErrUnexpectedEOF
		}
		return 0, d.err
	}

	// Decode the complete quanta, keeping any partial quantum
	// for the next read.
	nr := d.nbuf / 4 * 4
	for i := 0; i < nr; i++ {
		d.wide[i] = uint16(d.buf[i])
	}
	nw, derr := d.c.Decode(d.outbuf[:], d.wide[:nr])
	d.nbuf -= nr
	copy(d.buf[:d.nbuf], d.buf[nr:])
	if derr != nil {
		d.err = derr
		return 0, d.err
	}

	d.out = d.outbuf[:nw]
	n = copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

// NewlineFilteringReader returns a Reader that filters out the
// newline characters '\r' and '\n'.
func NewlineFilteringReader(r io.Reader) io.Reader {
	return &newlineFilteringReader{r: r}
}

type newlineFilteringReader struct {
	r io.Reader
}

func (r *newlineFilteringReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	for n > 0 {
		offset := 0
		for _, b := range p[:n] {
			p[offset] = b
			v := subtle.ConstantTimeByteEq(b, '\r') |
				subtle.ConstantTimeByteEq(b, '\n')
			offset += v ^ 1
		}
		if offset > 0 {
			return offset, err
		}
		// Previous buffer entirely newlines, read again.
		n, err = r.r.Read(p)
	}
	return n, err
}
