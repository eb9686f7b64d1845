// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "sync"

// historyWindowPools holds reusable history windows, one pool per window size.
var historyWindowPools [WindowMax - WindowMin + 1]sync.Pool

// acquireHistoryWindow returns an empty history window of 1<<window bytes.
func acquireHistoryWindow(window int) *historyWindow {
	if h, ok := historyWindowPools[window-WindowMin].Get().(*historyWindow); ok {
		h.reset()
		return h
	}

	return newHistoryWindow(window)
}

// releaseHistoryWindow returns a history window to its pool.
func releaseHistoryWindow(h *historyWindow) {
	if h == nil {
		return
	}

	for window := WindowMin; window <= WindowMax; window++ {
		if h.size() == 1<<window {
			historyWindowPools[window-WindowMin].Put(h)
			return
		}
	}
}
