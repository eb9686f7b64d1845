// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

/*
Package lzxd implements the LZXD stream framing used inside cabinet (CAB) archives.

The bitstream is read and written in 16-bit little-endian words, MSB-first within a word.
A stream is a sequence of chunks of at most 32 KiB of uncompressed data; every chunk starts
on a word boundary with a 16-bit compressed size. The first chunk header is followed by a
flag bit and an optional 32-bit file size. Chunks carry blocks: a 3-bit kind, a 24-bit
uncompressed length and a kind-specific body. Uncompressed blocks hold a filler bit, the
R0/R1/R2 recent-offset triple and raw bytes, all word aligned.

Verbatim and aligned offset blocks are recognised but their entropy-coded bodies are not
decoded yet; reading one fails with ErrUnsupportedBlockType. The compressor only emits
uncompressed blocks.

The window size and exact uncompressed size come from the enclosing container.

# Decompress

From a byte slice:

	out, err := lzxd.Decompress(compressed, 16, expectedLen)

As a stream:

	d, err := lzxd.NewDecompressor(r, 16, uint64(expectedLen), nil)
	if err != nil {
		return err
	}
	defer d.Close()
	_, err = io.Copy(dst, d)

# Compress

	out, err := lzxd.Compress(data, 16)

As a stream (the total size must be known up front):

	c, err := lzxd.NewCompressor(w, 16, uint64(size), nil)
	if err != nil {
		return err
	}
	if _, err := io.Copy(c, src); err != nil {
		return err
	}
	err = c.Close()
*/
package lzxd
