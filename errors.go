// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"io"

	"github.com/pkg/errors"
)

// Sentinel errors for decompression and compression.
var (
	// ErrInvalidWindow is returned when the window is outside [WindowMin, WindowMax].
	ErrInvalidWindow = errors.New("invalid lzx window")
	// ErrInvalidBlockType is returned for a block kind wire code outside 1..3.
	ErrInvalidBlockType = errors.New("invalid lzx block type")
	// ErrUnsupportedBlockType is returned when a verbatim or aligned offset block is met.
	ErrUnsupportedBlockType = errors.New("unsupported lzx block type")
	// ErrBitCount is returned when more than 32 bits are requested in one field.
	ErrBitCount = errors.New("bit count exceeds 32")
	// ErrValueOverflow is returned when a value does not fit the requested bit width.
	ErrValueOverflow = errors.New("value does not fit bit width")
	// ErrSizeExceeded is returned when more bytes are written than the declared uncompressed size.
	ErrSizeExceeded = errors.New("declared uncompressed size exceeded")
	// ErrIncompleteStream is returned by Compressor.Close before the declared size was written.
	ErrIncompleteStream = errors.New("stream shorter than declared uncompressed size")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of history.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrNegativeOutLen is returned when a negative output length is requested.
	ErrNegativeOutLen = errors.New("output length must be non-negative")
	// ErrClosed is returned by Read or Write after Close.
	ErrClosed = errors.New("stream closed")
	// ErrNilReader is returned when a nil source is passed.
	ErrNilReader = errors.New("reader is nil")
	// ErrNilWriter is returned when a nil sink is passed.
	ErrNilWriter = errors.New("writer is nil")
)

// invalidWindow builds the error for an out-of-range window, citing the value.
func invalidWindow(window int) error {
	return errors.Wrapf(ErrInvalidWindow, "window %d not in [%d, %d]", window, WindowMin, WindowMax)
}

// wrapRead wraps a source error for field, turning a clean EOF into io.ErrUnexpectedEOF:
// every field the decoder asks for is required.
func wrapRead(err error, field string) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return errors.Wrapf(err, "reading %s", field)
}
