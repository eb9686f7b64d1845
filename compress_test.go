package lzxd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_ConcreteVector(t *testing.T) {
	out, err := Compress([]byte("abc"), WindowMin)
	require.NoError(t, err)
	assert.Equal(t, abcStream, out)
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 2, 3, ChunkSize - 1, ChunkSize, ChunkSize + 1, 2 * ChunkSize}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size-%d", size), func(t *testing.T) {
			data := make([]byte, size)
			for i := range data {
				data[i] = byte(i*31 + i>>9)
			}

			cmp, err := Compress(data, WindowMin)
			require.NoError(t, err)

			out, err := Decompress(cmp, WindowMin, size)
			require.NoError(t, err)
			assert.Equal(t, data, out)

			outReader, err := DecompressFromReader(bytes.NewReader(cmp), WindowMin, size)
			require.NoError(t, err)
			assert.Equal(t, data, outReader)
		})
	}
}

func TestCompress_ChunkLayout(t *testing.T) {
	data := bytes.Repeat([]byte{0x5a}, ChunkSize+1)
	cmp, err := Compress(data, WindowMin)
	require.NoError(t, err)

	// chunk 1: header, two bit words, offsets, body
	firstLen := 2 + 4 + recentOffsetsBytes + ChunkSize
	// chunk 2: header, two bit words, offsets, body, pad
	secondLen := 2 + 4 + recentOffsetsBytes + 1 + 1
	require.Len(t, cmp, firstLen+secondLen)

	assert.EqualValues(t, uncompressedBlockOverhead+ChunkSize, binary.LittleEndian.Uint16(cmp[0:2]))
	assert.EqualValues(t, uncompressedBlockOverhead+2, binary.LittleEndian.Uint16(cmp[firstLen:firstLen+2]))

	d, err := NewDecompressor(bytes.NewReader(cmp), WindowMin, uint64(len(data)), nil)
	require.NoError(t, err)
	defer d.Close()

	out, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, 1, d.chunkIndex)
	assert.Equal(t, uncompressedBlockOverhead+2, d.ChunkCompressedSize())
}

func TestCompressor_StreamedWritesMatchOneShot(t *testing.T) {
	data := make([]byte, 3*ChunkSize/2+17)
	for i := range data {
		data[i] = byte(i % 251)
	}

	want, err := Compress(data, 17)
	require.NoError(t, err)

	var out bytes.Buffer
	c, err := NewCompressor(&out, 17, uint64(len(data)), nil)
	require.NoError(t, err)

	for rest, step := data, 1; len(rest) > 0; step = step*3 + 1 {
		m := min(step, len(rest))
		n, err := c.Write(rest[:m])
		require.NoError(t, err)
		require.Equal(t, m, n)
		rest = rest[m:]
	}
	require.NoError(t, c.Close())

	assert.Equal(t, want, out.Bytes())
}

func TestCompressor_SizeContract(t *testing.T) {
	t.Run("exceeded", func(t *testing.T) {
		var out bytes.Buffer
		c, err := NewCompressor(&out, WindowMin, 3, nil)
		require.NoError(t, err)

		n, err := c.Write([]byte("abcd"))
		require.ErrorIs(t, err, ErrSizeExceeded)
		assert.Equal(t, 3, n)
		assert.Equal(t, abcStream, out.Bytes())
		require.NoError(t, c.Close())
	})

	t.Run("incomplete", func(t *testing.T) {
		var out bytes.Buffer
		c, err := NewCompressor(&out, WindowMin, 5, nil)
		require.NoError(t, err)

		_, err = c.Write([]byte("abc"))
		require.NoError(t, err)
		require.ErrorIs(t, c.Close(), ErrIncompleteStream)
		assert.Zero(t, out.Len(), "partial chunk must not be emitted")

		_, err = c.Write([]byte("de"))
		require.ErrorIs(t, err, ErrClosed)
	})
}

func TestCompressor_ArgumentErrors(t *testing.T) {
	for _, window := range []int{14, 22} {
		_, err := NewCompressor(io.Discard, window, 3, nil)
		require.ErrorIs(t, err, ErrInvalidWindow)

		_, err = Compress([]byte("abc"), window)
		require.ErrorIs(t, err, ErrInvalidWindow)
	}

	for _, window := range []int{WindowMin, WindowMax} {
		_, err := NewCompressor(io.Discard, window, 3, nil)
		require.NoError(t, err)
	}

	_, err := NewCompressor(nil, WindowMin, 3, nil)
	require.ErrorIs(t, err, ErrNilWriter)
}

type failingWriter struct {
	budget int
}

var errSinkFull = errors.New("sink full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errSinkFull
	}

	w.budget -= len(p)
	return len(p), nil
}

func TestCompressor_SinkErrorIsLatched(t *testing.T) {
	c, err := NewCompressor(&failingWriter{budget: 10}, WindowMin, ChunkSize, nil)
	require.NoError(t, err)

	_, err = c.Write(make([]byte, ChunkSize))
	require.ErrorIs(t, err, errSinkFull)

	_, err = c.Write([]byte{1})
	require.ErrorIs(t, err, errSinkFull)
	require.ErrorIs(t, c.Close(), errSinkFull)
}
