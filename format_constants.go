// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// LZXD format constants: window bounds, chunk framing and block header layout.

// Window bounds (window is log2 of the history buffer size).
const (
	// WindowMin is the smallest permitted window (32 KiB history).
	WindowMin = 15
	// WindowMax is the largest permitted window (2 MiB history).
	WindowMax = 21
)

// ChunkSize is the maximum number of uncompressed bytes in one chunk.
const ChunkSize = 0x8000

// Bit widths of header fields.
const (
	fileSizeFlagBits = 1  // "declared file size follows" flag on the first chunk
	fileSizeBits     = 32 // declared file size
	blockKindBits    = 3  // block kind wire code
	blockSizeBits    = 24 // uncompressed block length
	fillerBits       = 1  // filler bit before an uncompressed block body
	maxFieldBits     = 32 // widest field served by the bit reader/writer
	wordBits         = 16 // the format's I/O granularity
)

// uncompressedBlockOverhead is the fixed per-chunk overhead of a single uncompressed block:
// block header word pair plus the R0/R1/R2 triple.
const uncompressedBlockOverhead = 16

// recentOffsetsBytes is the size of the stored R0/R1/R2 triple.
const recentOffsetsBytes = 12

// validWindow reports whether window is inside [WindowMin, WindowMax].
func validWindow(window int) bool {
	return window >= WindowMin && window <= WindowMax
}
