// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// historyWindow is the circular history of produced bytes shared by every chunk and
// block of one stream. It has a single write cursor; back-references read relative to it.
type historyWindow struct {
	buf     []byte // ring buffer, len is 1<<window
	pos     int    // next write position in buf
	written uint64 // total bytes written since reset
}

// newHistoryWindow allocates a window of 1<<window bytes.
func newHistoryWindow(window int) *historyWindow {
	return &historyWindow{buf: make([]byte, 1<<window)}
}

// reset forgets all history. Buffer contents are left in place: reads never go past written.
func (h *historyWindow) reset() {
	h.pos = 0
	h.written = 0
}

// size returns the ring capacity in bytes.
func (h *historyWindow) size() int {
	return len(h.buf)
}

// available returns how many bytes back from the cursor may be referenced.
func (h *historyWindow) available() int {
	if h.written < uint64(len(h.buf)) {
		return int(h.written)
	}

	return len(h.buf)
}

// write appends p to the history, overwriting the oldest bytes once the ring is full.
func (h *historyWindow) write(p []byte) {
	h.written += uint64(len(p))
	if len(p) >= len(h.buf) {
		copy(h.buf, p[len(p)-len(h.buf):])
		h.pos = 0
		return
	}

	n := copy(h.buf[h.pos:], p)
	if n < len(p) {
		copy(h.buf, p[n:])
	}

	h.pos = (h.pos + len(p)) & (len(h.buf) - 1)
}

// readAtOffset fills dst with the bytes starting distance back from the cursor.
// When distance < len(dst) the run repeats with period distance, matching what an
// overlapping match copy produces once dst is written back.
func (h *historyWindow) readAtOffset(dst []byte, distance int) error {
	if distance <= 0 || distance > h.available() {
		return ErrLookBehindUnderrun
	}

	mask := len(h.buf) - 1
	start := (h.pos - distance) & mask
	direct := min(distance, len(dst))

	n := copy(dst[:direct], h.buf[start:])
	if n < direct {
		copy(dst[n:direct], h.buf)
	}

	for i := direct; i < len(dst); i++ {
		dst[i] = dst[i-distance]
	}

	return nil
}
