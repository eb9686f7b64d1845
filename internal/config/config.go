// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package config

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/lzxd"
)

const (
	EnvVarPrefix = "LZXD"

	DefaultWindow    = lzxd.WindowMax
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	CommandCompress   = "compress"
	CommandDecompress = "decompress"

	// Stdio is the path value meaning stdin or stdout
	Stdio = "-"
)

var (
	// VERSION gets set during build
	VERSION = "0.0.0"

	validLogFormats = map[string]struct{}{
		"text": {},
		"json": {},
	}
)

type Config struct {
	CLI  *CLI
	TOML *TOML
}

type TOML struct {
	Codec *TOMLCodec `toml:"codec"`
	Log   *TOMLLog   `toml:"log"`
}

type TOMLCodec struct {
	Window int `toml:"window"`
}

type TOMLLog struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type CLI struct {
	ConfigFile string `kong:"help='Path to an optional TOML config file',type='path',short='c'"`
	Debug      bool   `kong:"help='Enable debug output',short='d'"`

	Version kong.VersionFlag `help:"Show version and exit" short:"v" env:"-"`

	Compress   CompressCmd   `kong:"cmd,help='Compress a file into a raw LZXD stream'"`
	Decompress DecompressCmd `kong:"cmd,help='Decompress a raw LZXD stream'"`

	// Internal bits
	Command string `kong:"-"`
}

type CompressCmd struct {
	Window int    `kong:"help='Window size as log2 (15..21); 0 uses the config file value',short='w'"`
	Output string `kong:"help='Output file (- for stdout)',default='-',short='o'"`
	Input  string `kong:"arg,optional,default='-',help='Input file (- for stdin)'"`
}

type DecompressCmd struct {
	Window int    `kong:"help='Window size as log2 (15..21); 0 uses the config file value',short='w'"`
	Size   uint64 `kong:"required,help='Exact uncompressed size in bytes',short='s'"`
	Output string `kong:"help='Output file (- for stdout)',default='-',short='o'"`
	Input  string `kong:"arg,optional,default='-',help='Input file (- for stdin)'"`
}

// NewConfig parses args (without the program name), loads .env and the optional
// TOML config file, and validates the result.
func NewConfig(args []string) (*Config, error) {
	// Attempt to load .env
	_ = godotenv.Load(".env")

	cli, err := readCLIArgs(args)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing CLI args")
	}

	tomlConfig, err := readTOML(cli.ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	cfg := &Config{
		CLI:  cli,
		TOML: tomlConfig,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Window resolves the window for the selected command: the flag wins over the config file.
func (c *Config) Window() int {
	var window int

	switch c.CLI.Command {
	case CommandCompress:
		window = c.CLI.Compress.Window
	case CommandDecompress:
		window = c.CLI.Decompress.Window
	}

	if window == 0 {
		window = c.TOML.Codec.Window
	}

	return window
}

// LogLevel resolves the log level; --debug overrides the config file.
func (c *Config) LogLevel() logrus.Level {
	if c.CLI.Debug {
		return logrus.DebugLevel
	}

	level, err := logrus.ParseLevel(c.TOML.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

func Validate(c *Config) error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	if err := validateCLIArgs(c.CLI); err != nil {
		return errors.Wrap(err, "error validating CLI args")
	}

	if err := validateTOML(c.TOML); err != nil {
		return errors.Wrap(err, "error validating toml config")
	}

	if window := c.Window(); window < lzxd.WindowMin || window > lzxd.WindowMax {
		return errors.Errorf("window %d must be between %d and %d", window, lzxd.WindowMin, lzxd.WindowMax)
	}

	return nil
}

func setTOMLDefaults(t *TOML) error {
	if t == nil {
		return errors.New("toml config cannot be nil")
	}

	if t.Codec == nil {
		t.Codec = &TOMLCodec{}
	}

	if t.Log == nil {
		t.Log = &TOMLLog{}
	}

	if t.Codec.Window == 0 {
		t.Codec.Window = DefaultWindow
	}

	if t.Log.Level == "" {
		t.Log.Level = DefaultLogLevel
	}

	if t.Log.Format == "" {
		t.Log.Format = DefaultLogFormat
	}

	return nil
}

func validateTOML(t *TOML) error {
	if t == nil {
		return errors.New("toml config cannot be nil")
	}

	if t.Codec == nil {
		return errors.New("codec cannot be empty")
	}

	if t.Codec.Window < lzxd.WindowMin || t.Codec.Window > lzxd.WindowMax {
		return errors.Errorf("codec.window must be between %d and %d", lzxd.WindowMin, lzxd.WindowMax)
	}

	if t.Log == nil {
		return errors.New("log cannot be empty")
	}

	if _, err := logrus.ParseLevel(t.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level %s is invalid", t.Log.Level)
	}

	if _, ok := validLogFormats[t.Log.Format]; !ok {
		return errors.Errorf("log.format %s is invalid", t.Log.Format)
	}

	return nil
}

func validateCLIArgs(cli *CLI) error {
	if cli == nil {
		return errors.New("cli cannot be nil")
	}

	switch cli.Command {
	case CommandCompress:
		if cli.Compress.Input == "" {
			return errors.New("compress input cannot be empty")
		}
	case CommandDecompress:
		if cli.Decompress.Input == "" {
			return errors.New("decompress input cannot be empty")
		}
	default:
		return errors.Errorf("unknown command '%s'", cli.Command)
	}

	return nil
}

func readCLIArgs(args []string) (*CLI, error) {
	cli := &CLI{}

	parser, err := kong.New(cli,
		kong.Name("lzxd"),
		kong.Description("LZXD stream compressor / decompressor"),
		kong.UsageOnError(),
		kong.DefaultEnvars(EnvVarPrefix),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{
			"version": VERSION,
		})
	if err != nil {
		return nil, errors.Wrap(err, "error building CLI parser")
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, err
	}

	// "compress <input>" -> "compress"
	if fields := strings.Fields(ctx.Command()); len(fields) > 0 {
		cli.Command = fields[0]
	}

	return cli, nil
}

// readTOML loads file, or returns defaults when file is empty.
func readTOML(file string) (*TOML, error) {
	tomlConfig := &TOML{}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "error reading file")
		}

		if err := toml.Unmarshal(data, tomlConfig); err != nil {
			return nil, errors.Wrap(err, "error parsing TOML config")
		}
	}

	// Set defaults
	if err := setTOMLDefaults(tomlConfig); err != nil {
		return nil, errors.Wrap(err, "error setting TOML defaults")
	}

	if err := validateTOML(tomlConfig); err != nil {
		return nil, errors.Wrap(err, "error validating TOML config")
	}

	return tomlConfig, nil
}
