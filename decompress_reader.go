// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"io"

	"github.com/pkg/errors"
)

// DecompressFromReader decodes exactly outLen bytes from the LZXD stream in r.
// Bytes after the last chunk are left unread.
func DecompressFromReader(r io.Reader, window int, outLen int) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	d, err := NewDecompressor(r, window, uint64(outLen), nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	out := make([]byte, outLen)
	if _, err := io.ReadFull(d, out); err != nil {
		return nil, errors.Wrap(err, "decompressing stream")
	}

	return out, nil
}
