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

// Decompressor reads an LZXD stream and produces the original bytes through Read.
//
// The state machine is nested stream -> chunk -> block. Each Read advances it only as far
// as needed to fill the caller's buffer. After any error the stream is unusable.
type Decompressor struct {
	br  *bitReader
	log logrus.FieldLogger

	history *historyWindow
	recent  recentOffsets

	totalRemaining      uint64 // uncompressed bytes left in the stream
	chunkCompressedSize int    // compressed size declared by the current chunk header
	chunkRemaining      int    // uncompressed bytes left in the current chunk
	chunkIndex          int

	blockKind      BlockKind // zero before the first block
	blockRemaining int       // uncompressed bytes left in the current block
	body           blockDecoder

	fileSize    uint32
	hasFileSize bool

	err error
}

// NewDecompressor starts decoding an LZXD stream from r.
//
// window selects the history size (1<<window bytes) and must be in [WindowMin, WindowMax].
// uncompressedSize is the exact size of the original data. opts may be nil.
// The first chunk header is read immediately; a zero uncompressedSize reads nothing.
func NewDecompressor(r io.Reader, window int, uncompressedSize uint64, opts *DecompressOptions) (*Decompressor, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if !validWindow(window) {
		return nil, invalidWindow(window)
	}

	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	d := &Decompressor{
		br:             newBitReader(r),
		log:            loggerOrDefault(opts.Logger),
		history:        acquireHistoryWindow(window),
		recent:         initialRecentOffsets,
		totalRemaining: uncompressedSize,
	}

	if uncompressedSize == 0 {
		return d, nil
	}

	if err := d.readStreamHeader(); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// readStreamHeader reads the first chunk header and the optional declared file size.
func (d *Decompressor) readStreamHeader() error {
	size, err := d.readChunkHeader()
	if err != nil {
		return err
	}

	d.chunkCompressedSize = size
	d.chunkRemaining = d.nextChunkSize()

	flag, err := d.br.readBits(fileSizeFlagBits)
	if err != nil {
		return errors.Wrap(err, "reading file size flag")
	}

	if flag != 0 {
		d.fileSize, err = d.br.readBits(fileSizeBits)
		if err != nil {
			return errors.Wrap(err, "reading declared file size")
		}
		d.hasFileSize = true
	}

	d.log.WithFields(logrus.Fields{
		"method":          "readStreamHeader",
		"compressed_size": d.chunkCompressedSize,
		"has_file_size":   d.hasFileSize,
		"file_size":       d.fileSize,
	}).Debug("stream header")

	return nil
}

// readChunkHeader reads the 16-bit compressed size that opens every chunk.
// The reader must be word aligned.
func (d *Decompressor) readChunkHeader() (int, error) {
	var header [2]byte
	if _, err := io.ReadFull(d.br, header[:]); err != nil {
		return 0, wrapRead(err, "chunk header")
	}

	return int(binary.LittleEndian.Uint16(header[:])), nil
}

// nextChunkSize is the uncompressed size of the chunk starting now.
func (d *Decompressor) nextChunkSize() int {
	return int(min(d.totalRemaining, ChunkSize))
}

// nextChunk re-aligns and reads the header of the following chunk.
func (d *Decompressor) nextChunk() error {
	if err := d.br.alignToWord(); err != nil {
		return errors.Wrap(err, "aligning chunk")
	}

	size, err := d.readChunkHeader()
	if err != nil {
		return err
	}

	d.chunkIndex++
	d.chunkCompressedSize = size
	d.chunkRemaining = d.nextChunkSize()

	d.log.WithFields(logrus.Fields{
		"method":            "nextChunk",
		"chunk":             d.chunkIndex,
		"compressed_size":   size,
		"uncompressed_size": d.chunkRemaining,
	}).Debug("chunk header")

	return nil
}

// nextBlock reads a block header and hands the kind-specific part to its body decoder.
func (d *Decompressor) nextBlock() error {
	// Uncompressed blocks are word padded on exit.
	if d.blockKind == BlockUncompressed {
		if err := d.br.alignToWord(); err != nil {
			return errors.Wrap(err, "aligning after uncompressed block")
		}
	}

	code, err := d.br.readBits(blockKindBits)
	if err != nil {
		return errors.Wrap(err, "reading block type")
	}

	kind, err := BlockKindFromWireCode(code)
	if err != nil {
		return err
	}

	size, err := d.br.readBits(blockSizeBits)
	if err != nil {
		return errors.Wrap(err, "reading block size")
	}

	d.blockKind = kind
	d.blockRemaining = int(size)
	d.body = blockDecoderFor(kind)

	d.log.WithFields(logrus.Fields{
		"method": "nextBlock",
		"chunk":  d.chunkIndex,
		"kind":   kind,
		"size":   size,
	}).Debug("block header")

	return d.body.readHeader(d)
}

// Read fills p with decompressed bytes. It returns io.EOF once the declared
// uncompressed size has been produced.
func (d *Decompressor) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}

	if len(p) == 0 {
		return 0, nil
	}

	if d.totalRemaining == 0 {
		return 0, io.EOF
	}

	n := 0
	for d.totalRemaining > 0 && n < len(p) {
		if d.chunkRemaining == 0 {
			if err := d.nextChunk(); err != nil {
				return 0, d.fail(err)
			}
		}

		for d.blockRemaining == 0 {
			if err := d.nextBlock(); err != nil {
				return 0, d.fail(err)
			}
		}

		m := min(d.blockRemaining, d.chunkRemaining, len(p)-n)
		if err := d.body.decode(d, p[n:n+m]); err != nil {
			return 0, d.fail(err)
		}

		n += m
		d.blockRemaining -= m
		d.chunkRemaining -= m
		d.totalRemaining -= uint64(m)
	}

	return n, nil
}

// fail latches err so the stream refuses further use.
func (d *Decompressor) fail(err error) error {
	d.err = err
	return err
}

// RecentOffsets returns the current R0, R1, R2 match distance cache.
func (d *Decompressor) RecentOffsets() [3]uint32 {
	return d.recent
}

// DeclaredFileSize returns the file size stored after the first chunk header, if any.
func (d *Decompressor) DeclaredFileSize() (uint32, bool) {
	return d.fileSize, d.hasFileSize
}

// ChunkCompressedSize returns the compressed size declared by the current chunk header.
func (d *Decompressor) ChunkCompressedSize() int {
	return d.chunkCompressedSize
}

// Close releases the history window. Further reads fail with ErrClosed.
func (d *Decompressor) Close() error {
	if d.history != nil {
		releaseHistoryWindow(d.history)
		d.history = nil
	}

	if d.err == nil {
		d.err = ErrClosed
	}

	return nil
}

// Decompress decodes a whole LZXD stream held in src into outLen bytes.
func Decompress(src []byte, window int, outLen int) ([]byte, error) {
	return DecompressFromReader(bytes.NewReader(src), window, outLen)
}
