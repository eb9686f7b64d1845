// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "encoding/binary"

// recentOffsets is the R0/R1/R2 cache of most recently used match distances.
type recentOffsets [3]uint32

// initialRecentOffsets is the cache state at stream start.
var initialRecentOffsets = recentOffsets{1, 1, 1}

// decode loads R0, R1, R2 from their 12-byte little-endian stored form.
func (r *recentOffsets) decode(b []byte) {
	_ = b[recentOffsetsBytes-1]
	r[0] = binary.LittleEndian.Uint32(b[0:4])
	r[1] = binary.LittleEndian.Uint32(b[4:8])
	r[2] = binary.LittleEndian.Uint32(b[8:12])
}

// encode stores R0, R1, R2 into b as 12 little-endian bytes.
func (r recentOffsets) encode(b []byte) {
	_ = b[recentOffsetsBytes-1]
	binary.LittleEndian.PutUint32(b[0:4], r[0])
	binary.LittleEndian.PutUint32(b[4:8], r[1])
	binary.LittleEndian.PutUint32(b[8:12], r[2])
}
