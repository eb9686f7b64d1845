package lzxd

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// abcStream is the encoding of "abc" with no declared file size.
var abcStream = []byte{
	0x14, 0x00, 0x00, 0x30, 0x30, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x61, 0x62, 0x63, 0x00,
}

// streamBuilder hand-assembles LZXD streams for decoder tests.
type streamBuilder struct {
	t   *testing.T
	out bytes.Buffer
	bw  *bitWriter
}

func newStreamBuilder(t *testing.T) *streamBuilder {
	s := &streamBuilder{t: t}
	s.bw = newBitWriter(&s.out)
	return s
}

func (s *streamBuilder) chunkHeader(compressedSize uint16) *streamBuilder {
	s.t.Helper()
	require.NoError(s.t, s.bw.alignToWord())
	var header [2]byte
	binary.LittleEndian.PutUint16(header[:], compressedSize)
	s.raw(header[:])
	return s
}

func (s *streamBuilder) bits(n uint, v uint32) *streamBuilder {
	s.t.Helper()
	require.NoError(s.t, s.bw.writeBits(n, v))
	return s
}

func (s *streamBuilder) raw(p []byte) *streamBuilder {
	s.t.Helper()
	_, err := s.bw.Write(p)
	require.NoError(s.t, err)
	return s
}

// uncompressedBlock writes a block header for size bytes and the first part of its body.
func (s *streamBuilder) uncompressedBlock(size int, offsets recentOffsets, body []byte) *streamBuilder {
	s.t.Helper()
	s.bits(blockKindBits, BlockUncompressed.WireCode())
	s.bits(blockSizeBits, uint32(size))
	s.bits(fillerBits, 0)
	require.NoError(s.t, s.bw.alignToWord())

	var stored [recentOffsetsBytes]byte
	offsets.encode(stored[:])
	s.raw(stored[:])
	return s.raw(body)
}

func (s *streamBuilder) bytes() []byte {
	s.t.Helper()
	require.NoError(s.t, s.bw.alignToWord())
	return s.out.Bytes()
}
