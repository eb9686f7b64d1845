// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/lzxd"
	"github.com/woozymasta/lzxd/internal/config"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: ", err)
		os.Exit(1)
	}

	setupLogging(cfg)
	displayConfig(cfg)

	if err := run(cfg); err != nil {
		logrus.Errorf("%s failed: %s", cfg.CLI.Command, err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.LogLevel())

	if cfg.TOML.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func displayConfig(cfg *config.Config) {
	logrus.Debug("lzxd settings:")
	logrus.Debugf("  version: %s", config.VERSION)
	logrus.Debugf("  command: %s", cfg.CLI.Command)
	logrus.Debugf("  config file: %s", cfg.CLI.ConfigFile)
	logrus.Debugf("  window: %d", cfg.Window())
	logrus.Debugf("  log.level: %s", cfg.TOML.Log.Level)
	logrus.Debugf("  log.format: %s", cfg.TOML.Log.Format)
}

func run(cfg *config.Config) error {
	log := logrus.WithFields(logrus.Fields{
		"pkg":     "lzxd",
		"command": cfg.CLI.Command,
	})

	switch cfg.CLI.Command {
	case config.CommandCompress:
		return runCompress(cfg.CLI.Compress.Input, cfg.CLI.Compress.Output, cfg.Window(), log)
	case config.CommandDecompress:
		return runDecompress(cfg.CLI.Decompress.Input, cfg.CLI.Decompress.Output, cfg.Window(), cfg.CLI.Decompress.Size, log)
	default:
		return errors.Errorf("unknown command '%s'", cfg.CLI.Command)
	}
}

func runCompress(input, output string, window int, log *logrus.Entry) error {
	in, size, err := openSizedInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	c, err := lzxd.NewCompressor(w, window, size, &lzxd.CompressOptions{Logger: log})
	if err != nil {
		return errors.Wrap(err, "unable to create compressor")
	}

	n, err := io.Copy(c, in)
	if err != nil {
		return errors.Wrap(err, "error compressing input")
	}

	if err := c.Close(); err != nil {
		return errors.Wrap(err, "error finishing stream")
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "error flushing output")
	}

	log.Infof("compressed %d bytes", n)

	return nil
}

func runDecompress(input, output string, window int, size uint64, log *logrus.Entry) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	d, err := lzxd.NewDecompressor(bufio.NewReader(in), window, size, &lzxd.DecompressOptions{Logger: log})
	if err != nil {
		return errors.Wrap(err, "unable to create decompressor")
	}
	defer d.Close()

	w := bufio.NewWriter(out)
	n, err := io.Copy(w, d)
	if err != nil {
		return errors.Wrap(err, "error decompressing input")
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "error flushing output")
	}

	log.Infof("decompressed %d bytes", n)

	return nil
}

// openSizedInput opens input and reports its size; stdin is buffered in memory
// because the stream header needs the total size up front.
func openSizedInput(input string) (io.ReadCloser, uint64, error) {
	if input == config.Stdio {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, 0, errors.Wrap(err, "unable to read stdin")
		}

		return io.NopCloser(bytes.NewReader(data)), uint64(len(data)), nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, 0, errors.Wrap(err, "unable to open input file")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, errors.Wrap(err, "unable to stat input file")
	}

	return f, uint64(info.Size()), nil
}

func openInput(input string) (io.ReadCloser, error) {
	if input == config.Stdio {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open input file")
	}

	return f, nil
}

func createOutput(output string) (io.WriteCloser, error) {
	if output == config.Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create output file")
	}

	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
