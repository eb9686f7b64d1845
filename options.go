// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "github.com/sirupsen/logrus"

// DecompressOptions configures a Decompressor.
type DecompressOptions struct {
	// Logger receives chunk and block transitions at debug level (nil = package default).
	Logger logrus.FieldLogger
}

// DefaultDecompressOptions returns options with the package default logger.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Logger: defaultLogger()}
}

// CompressOptions configures a Compressor.
type CompressOptions struct {
	// Logger receives emitted chunks at debug level (nil = package default).
	Logger logrus.FieldLogger
}

// DefaultCompressOptions returns options with the package default logger.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Logger: defaultLogger()}
}

// defaultLogger is the standard logrus logger tagged with the package name.
func defaultLogger() logrus.FieldLogger {
	return logrus.WithField("pkg", "lzxd")
}

// loggerOrDefault returns l, or the package default when l is nil.
func loggerOrDefault(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return defaultLogger()
	}

	return l
}
