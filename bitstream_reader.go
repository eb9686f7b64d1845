// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// bitBuffer holds bits pulled from (or destined for) 16-bit little-endian words.
// Valid bits sit at the top of bits, most significant first.
type bitBuffer struct {
	bits  uint64 // bit accumulator, MSB-first
	count uint   // number of valid bits in bits
	mod16 uint   // bits consumed modulo 16, for word alignment (reader only)
	pad   bool   // an odd number of raw bytes passed through since the last word
}

// bitReader serves variable-width bit fields and raw byte runs from a stream of
// 16-bit little-endian words.
type bitReader struct {
	r   io.Reader
	buf bitBuffer
	one [1]byte
	two [2]byte
}

// newBitReader wraps r; the stream is assumed to start word-aligned.
func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r}
}

// skipPad consumes the pad byte owed after an odd-length raw run.
func (b *bitReader) skipPad() error {
	if !b.buf.pad {
		return nil
	}

	if _, err := io.ReadFull(b.r, b.one[:]); err != nil {
		return wrapRead(err, "pad byte")
	}

	b.buf.pad = false
	return nil
}

// fill tops up the buffer one word at a time until it holds at least n bits.
// n <= 32 keeps the buffer within 48 bits before each top-up.
func (b *bitReader) fill(n uint) error {
	if b.buf.count >= n {
		return nil
	}

	if b.buf.count == 0 {
		if err := b.skipPad(); err != nil {
			return err
		}
	}

	for b.buf.count < n {
		if _, err := io.ReadFull(b.r, b.two[:]); err != nil {
			return wrapRead(err, "bit word")
		}

		word := uint64(binary.LittleEndian.Uint16(b.two[:]))
		b.buf.bits |= word << (48 - b.buf.count)
		b.buf.count += wordBits
	}

	return nil
}

// readBits consumes the next n bits (0..32), most significant first.
func (b *bitReader) readBits(n uint) (uint32, error) {
	v, err := b.peekBits(n)
	if err != nil || n == 0 {
		return v, err
	}

	b.buf.bits <<= n
	b.buf.count -= n
	b.buf.mod16 = (b.buf.mod16 + n) & 0xf

	return v, nil
}

// peekBits returns the next n bits (0..32) without consuming them.
func (b *bitReader) peekBits(n uint) (uint32, error) {
	if n > maxFieldBits {
		return 0, errors.Wrapf(ErrBitCount, "read of %d bits", n)
	}

	if n == 0 {
		return 0, nil
	}

	if err := b.fill(n); err != nil {
		return 0, err
	}

	return uint32(b.buf.bits >> (64 - n)), nil
}

// alignToWord discards bits up to the next 16-bit boundary of the underlying stream.
func (b *bitReader) alignToWord() error {
	if b.buf.mod16 != 0 {
		if _, err := b.readBits(wordBits - b.buf.mod16); err != nil {
			return err
		}
	}

	if b.buf.count == 0 {
		return b.skipPad()
	}

	return nil
}

// alignToByte discards bits up to the next byte boundary.
func (b *bitReader) alignToByte() error {
	if rem := b.buf.mod16 & 0x7; rem != 0 {
		if _, err := b.readBits(8 - rem); err != nil {
			return err
		}
	}

	return nil
}

// Read reads raw bytes. Bytes already resident in the bit buffer are returned first,
// in stream order; the rest come straight from the source.
func (b *bitReader) Read(p []byte) (int, error) {
	if err := b.alignToByte(); err != nil {
		return 0, err
	}

	n := 0
	for b.buf.count != 0 && n < len(p) {
		if b.buf.mod16 == 8 {
			v, err := b.readBits(8)
			if err != nil {
				return n, err
			}
			p[n] = byte(v)
			n++
			continue
		}

		// A whole resident word was loaded little-endian: low byte comes first.
		w, err := b.readBits(wordBits)
		if err != nil {
			return n, err
		}

		p[n] = byte(w)
		n++
		if n < len(p) {
			p[n] = byte(w >> 8)
			n++
			continue
		}

		b.buf.bits = b.buf.bits>>8 | uint64(w>>8)<<56
		b.buf.count += 8
		b.buf.mod16 = 8
	}

	if n == len(p) {
		return n, nil
	}

	k, err := b.r.Read(p[n:])
	if k&1 != 0 {
		b.buf.pad = !b.buf.pad
	}

	return n + k, err
}
