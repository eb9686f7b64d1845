// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// bitWriter accepts bit fields and raw byte runs and emits 16-bit little-endian words.
// The buffer never holds a full word between calls.
type bitWriter struct {
	w   io.Writer
	buf bitBuffer
	one [1]byte
	two [2]byte
}

// newBitWriter wraps w.
func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// fillPad writes the zero byte owed after an odd-length raw run.
func (b *bitWriter) fillPad() error {
	if !b.buf.pad {
		return nil
	}

	b.one[0] = 0
	if _, err := b.w.Write(b.one[:]); err != nil {
		return errors.Wrap(err, "writing pad byte")
	}

	b.buf.pad = false
	return nil
}

// writeBits appends the low n bits (0..32) of v, most significant first.
func (b *bitWriter) writeBits(n uint, v uint32) error {
	if n > maxFieldBits {
		return errors.Wrapf(ErrBitCount, "write of %d bits", n)
	}

	if n < maxFieldBits && v>>n != 0 {
		return errors.Wrapf(ErrValueOverflow, "value %#x in %d bits", v, n)
	}

	if n == 0 {
		return nil
	}

	if err := b.fillPad(); err != nil {
		return err
	}

	b.buf.bits |= uint64(v) << (64 - n - b.buf.count)
	b.buf.count += n

	for b.buf.count >= wordBits {
		binary.LittleEndian.PutUint16(b.two[:], uint16(b.buf.bits>>48))
		if _, err := b.w.Write(b.two[:]); err != nil {
			return errors.Wrap(err, "writing bit word")
		}

		b.buf.bits <<= wordBits
		b.buf.count -= wordBits
	}

	return nil
}

// purge pads a partial word with zero bits and flushes it.
func (b *bitWriter) purge() error {
	if b.buf.count == 0 {
		return nil
	}

	return b.writeBits(wordBits-b.buf.count, 0)
}

// alignToWord zero-pads to the next 16-bit boundary of the underlying stream.
func (b *bitWriter) alignToWord() error {
	if err := b.purge(); err != nil {
		return err
	}

	return b.fillPad()
}

// Write passes raw bytes through to the sink after flushing any partial word.
// Odd-length runs leave a pad byte owed to the next bit or alignment operation.
func (b *bitWriter) Write(p []byte) (int, error) {
	if err := b.purge(); err != nil {
		return 0, err
	}

	n, err := b.w.Write(p)
	if n&1 != 0 {
		b.buf.pad = !b.buf.pad
	}

	return n, err
}
