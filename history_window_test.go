package lzxd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryWindow_ReadAtOffset(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		h := newHistoryWindow(WindowMin)
		h.write([]byte("abcdefgh"))

		dst := make([]byte, 4)
		require.NoError(t, h.readAtOffset(dst, 8))
		assert.Equal(t, "abcd", string(dst))
	})

	t.Run("overlapping", func(t *testing.T) {
		h := newHistoryWindow(WindowMin)
		h.write([]byte("ABC"))

		dst := make([]byte, 5)
		require.NoError(t, h.readAtOffset(dst, 3))
		assert.Equal(t, "ABCAB", string(dst))
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		h := newHistoryWindow(WindowMin)
		h.write([]byte("ab"))

		require.ErrorIs(t, h.readAtOffset(make([]byte, 2), 3), ErrLookBehindUnderrun)
		require.ErrorIs(t, h.readAtOffset(make([]byte, 2), 0), ErrLookBehindUnderrun)
	})

	t.Run("wrap-around", func(t *testing.T) {
		h := newHistoryWindow(WindowMin)
		size := h.size()
		h.write(bytes.Repeat([]byte{'x'}, size-2))
		h.write([]byte("1234"))

		dst := make([]byte, 4)
		require.NoError(t, h.readAtOffset(dst, 4))
		assert.Equal(t, "1234", string(dst))
		assert.Equal(t, size, h.available())
		require.ErrorIs(t, h.readAtOffset(dst, size+1), ErrLookBehindUnderrun)
	})

	t.Run("write-larger-than-window", func(t *testing.T) {
		h := newHistoryWindow(WindowMin)
		size := h.size()
		src := make([]byte, size+10)
		for i := range src {
			src[i] = byte(i)
		}
		h.write(src)

		dst := make([]byte, size)
		require.NoError(t, h.readAtOffset(dst, size))
		assert.Equal(t, src[10:], dst)
	})
}

func TestHistoryWindow_Pool(t *testing.T) {
	for window := WindowMin; window <= WindowMax; window++ {
		h := acquireHistoryWindow(window)
		require.Equal(t, 1<<window, h.size())

		h.write([]byte("stale"))
		releaseHistoryWindow(h)

		h = acquireHistoryWindow(window)
		assert.Equal(t, 1<<window, h.size())
		assert.Zero(t, h.available(), "acquired window must be empty")
		releaseHistoryWindow(h)
	}

	releaseHistoryWindow(nil)
}
