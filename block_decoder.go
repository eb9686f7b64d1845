// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"io"

	"github.com/pkg/errors"
)

// blockDecoder decodes the body of one block kind. The kind and length fields have
// already been consumed when readHeader is called.
type blockDecoder interface {
	// readHeader consumes the kind-specific header that precedes the block body.
	readHeader(d *Decompressor) error
	// decode produces exactly len(dst) body bytes into dst and the history window.
	decode(d *Decompressor, dst []byte) error
}

// blockDecoderFor returns the body decoder for kind.
func blockDecoderFor(kind BlockKind) blockDecoder {
	if kind == BlockUncompressed {
		return uncompressedBlockDecoder{}
	}

	return unsupportedBlockDecoder{kind: kind}
}

// uncompressedBlockDecoder reads raw, word-aligned block bodies.
type uncompressedBlockDecoder struct{}

func (uncompressedBlockDecoder) readHeader(d *Decompressor) error {
	if _, err := d.br.readBits(fillerBits); err != nil {
		return errors.Wrap(err, "reading filler bit")
	}

	if err := d.br.alignToWord(); err != nil {
		return errors.Wrap(err, "aligning uncompressed block")
	}

	var stored [recentOffsetsBytes]byte
	if _, err := io.ReadFull(d.br, stored[:]); err != nil {
		return wrapRead(err, "recent offsets")
	}

	d.recent.decode(stored[:])
	return nil
}

func (uncompressedBlockDecoder) decode(d *Decompressor, dst []byte) error {
	if _, err := io.ReadFull(d.br, dst); err != nil {
		return wrapRead(err, "uncompressed block body")
	}

	d.history.write(dst)
	return nil
}

// unsupportedBlockDecoder rejects entropy-coded blocks (verbatim, aligned offset).
type unsupportedBlockDecoder struct {
	kind BlockKind
}

func (u unsupportedBlockDecoder) readHeader(*Decompressor) error {
	return errors.Wrapf(ErrUnsupportedBlockType, "%s block", u.kind)
}

func (u unsupportedBlockDecoder) decode(*Decompressor, []byte) error {
	return errors.Wrapf(ErrUnsupportedBlockType, "%s block", u.kind)
}
