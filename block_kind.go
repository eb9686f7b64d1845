// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"strconv"

	"github.com/pkg/errors"
)

// BlockKind is the kind tag carried by every LZXD block header.
type BlockKind uint8

// Block kinds, in wire-code order.
const (
	BlockVerbatim      BlockKind = iota + 1 // entropy-coded, verbatim offsets
	BlockAlignedOffset                      // entropy-coded, aligned offset tree
	BlockUncompressed                       // raw bytes, word aligned
)

// BlockKindFromWireCode decodes a 3-bit block kind code. Codes outside 1..3 fail with ErrInvalidBlockType.
func BlockKindFromWireCode(code uint32) (BlockKind, error) {
	switch code {
	case 1:
		return BlockVerbatim, nil
	case 2:
		return BlockAlignedOffset, nil
	case 3:
		return BlockUncompressed, nil
	default:
		return 0, errors.Wrapf(ErrInvalidBlockType, "code %d", code)
	}
}

// WireCode returns the 3-bit code for k.
func (k BlockKind) WireCode() uint32 {
	return uint32(k)
}

func (k BlockKind) String() string {
	switch k {
	case BlockVerbatim:
		return "verbatim"
	case BlockAlignedOffset:
		return "aligned-offset"
	case BlockUncompressed:
		return "uncompressed"
	default:
		return "BlockKind(" + strconv.Itoa(int(k)) + ")"
	}
}
