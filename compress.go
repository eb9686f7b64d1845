// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Compressor writes an LZXD stream to the underlying sink.
//
// Input is buffered into 32 KiB chunks; each chunk is emitted as a single uncompressed
// block as soon as it is full or the declared size has been reached.
type Compressor struct {
	bw  *bitWriter
	log logrus.FieldLogger

	window         int
	totalRemaining uint64 // bytes still expected from the caller
	chunk          []byte // pending chunk, cap ChunkSize
	chunkIndex     int
	wroteHeader    bool

	err error
}

// NewCompressor starts an LZXD stream on w for exactly uncompressedSize bytes.
// window must be in [WindowMin, WindowMax]. opts may be nil.
func NewCompressor(w io.Writer, window int, uncompressedSize uint64, opts *CompressOptions) (*Compressor, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	if !validWindow(window) {
		return nil, invalidWindow(window)
	}

	if opts == nil {
		opts = DefaultCompressOptions()
	}

	return &Compressor{
		bw:             newBitWriter(w),
		log:            loggerOrDefault(opts.Logger),
		window:         window,
		totalRemaining: uncompressedSize,
		chunk:          make([]byte, 0, ChunkSize),
	}, nil
}

// Write buffers p, emitting chunks as they fill. Bytes beyond the declared size are
// refused with ErrSizeExceeded; n reports how many were accepted.
func (c *Compressor) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	n := 0
	for c.totalRemaining > 0 && n < len(p) {
		m := int(min(c.totalRemaining, uint64(ChunkSize-len(c.chunk)), uint64(len(p)-n)))
		c.chunk = append(c.chunk, p[n:n+m]...)
		n += m
		c.totalRemaining -= uint64(m)

		if len(c.chunk) == ChunkSize {
			if err := c.emitChunk(); err != nil {
				return n, c.fail(err)
			}
		}
	}

	if c.totalRemaining == 0 && len(c.chunk) > 0 {
		if err := c.emitChunk(); err != nil {
			return n, c.fail(err)
		}
	}

	if n < len(p) {
		return n, errors.Wrapf(ErrSizeExceeded, "%d bytes refused", len(p)-n)
	}

	return n, nil
}

// emitChunk frames the pending chunk as one uncompressed block.
func (c *Compressor) emitChunk() error {
	size := len(c.chunk)
	compressedSize := uncompressedBlockOverhead + size + size&1

	if err := c.bw.alignToWord(); err != nil {
		return err
	}

	var header [2]byte
	binary.LittleEndian.PutUint16(header[:], uint16(compressedSize))
	if _, err := c.bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "writing chunk header")
	}

	if !c.wroteHeader {
		if err := c.bw.writeBits(fileSizeFlagBits, 0); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	if err := c.writeUncompressedBlockHeader(size); err != nil {
		return err
	}

	if _, err := c.bw.Write(c.chunk); err != nil {
		return errors.Wrap(err, "writing chunk body")
	}

	if err := c.bw.alignToWord(); err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{
		"method":          "emitChunk",
		"window":          c.window,
		"chunk":           c.chunkIndex,
		"size":            size,
		"compressed_size": compressedSize,
	}).Debug("chunk emitted")

	c.chunkIndex++
	c.chunk = c.chunk[:0]

	return nil
}

// writeUncompressedBlockHeader writes kind, length, filler and the R0/R1/R2 triple.
// No match search is done, so the triple always holds the initial distances.
func (c *Compressor) writeUncompressedBlockHeader(size int) error {
	if err := c.bw.writeBits(blockKindBits, BlockUncompressed.WireCode()); err != nil {
		return err
	}

	if err := c.bw.writeBits(blockSizeBits, uint32(size)); err != nil {
		return err
	}

	if err := c.bw.writeBits(fillerBits, 0); err != nil {
		return err
	}

	if err := c.bw.alignToWord(); err != nil {
		return err
	}

	var stored [recentOffsetsBytes]byte
	initialRecentOffsets.encode(stored[:])
	if _, err := c.bw.Write(stored[:]); err != nil {
		return errors.Wrap(err, "writing recent offsets")
	}

	return nil
}

// fail latches err so the stream refuses further use.
func (c *Compressor) fail(err error) error {
	c.err = err
	return err
}

// Close finishes the stream. It reports ErrIncompleteStream when fewer bytes than
// declared were written. Close does not close the underlying writer.
func (c *Compressor) Close() error {
	if c.err != nil {
		if c.err == ErrClosed {
			return nil
		}
		return c.err
	}

	c.err = ErrClosed
	if c.totalRemaining > 0 {
		return errors.Wrapf(ErrIncompleteStream, "%d bytes missing", c.totalRemaining)
	}

	return nil
}

// Compress encodes src as an LZXD stream using the given window.
func Compress(src []byte, window int) ([]byte, error) {
	var out bytes.Buffer
	c, err := NewCompressor(&out, window, uint64(len(src)), nil)
	if err != nil {
		return nil, err
	}

	if _, err := c.Write(src); err != nil {
		return nil, err
	}

	if err := c.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
