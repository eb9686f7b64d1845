// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzxd benchmark text payload "), 146),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(inputData, 16); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for _, window := range []int{WindowMin, WindowMax} {
		for inputName, inputData := range benchmarkInputSets() {
			compressedData, err := Compress(inputData, window)
			if err != nil {
				b.Fatalf("setup Compress failed for %s: %v", inputName, err)
			}

			name := fmt.Sprintf("%s/window-%d", inputName, window)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					d, err := NewDecompressor(bytes.NewReader(compressedData), window, uint64(len(inputData)), nil)
					if err != nil {
						b.Fatalf("NewDecompressor failed: %v", err)
					}
					if _, err := io.Copy(io.Discard, d); err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
					d.Close()
				}
			})
		}
	}
}
