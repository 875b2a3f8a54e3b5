// Package config resolves the tool's settings from defaults, an optional
// YAML file and the environment. Flags are applied on top by the command.
package config

import (
	stderrors "errors"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/errors"
	"github.com/wippyai/cesu8str/stream"
)

// Environment variables.
const (
	EnvDebug     = "CESU_DEBUG"          // any value enables debug diagnostics
	EnvChunkSize = "CESU8STR_CHUNK_SIZE" // buffer size in bytes
)

// Report formats.
const (
	ReportNone = ""
	ReportJSON = "json"
)

// Config holds every setting of a run.
type Config struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Report    string `yaml:"report"`
	ChunkSize int    `yaml:"chunk_size"`
	Java      bool   `yaml:"java"`
	Decode    bool   `yaml:"decode"`
	Debug     bool   `yaml:"debug"`
}

// Default returns the built-in settings: encode standard CESU-8 from stdin
// to stdout in 4 KiB chunks.
func Default() Config {
	return Config{ChunkSize: stream.DefaultChunkSize}
}

// Load reads defaults, then the YAML file at path when path is not empty,
// then the process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "open config file")
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse config file")
	}
	return nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if _, ok := lookup(EnvDebug); ok {
		c.Debug = true
	}
	if s, ok := lookup(EnvChunkSize); ok && strings.TrimSpace(s) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, EnvChunkSize)
		}
		c.ChunkSize = n
	}
	return nil
}

// Variant returns the selected CESU-8 variant.
func (c Config) Variant() cesu8str.Variant {
	if c.Java {
		return cesu8str.Java
	}
	return cesu8str.Standard
}

// Direction returns the selected direction.
func (c Config) Direction() cesu8str.Direction {
	if c.Decode {
		return cesu8str.Decode
	}
	return cesu8str.Encode
}

// StreamOptions builds the engine options.
func (c Config) StreamOptions(log *zap.Logger) stream.Options {
	return stream.Options{
		Logger:    log,
		ChunkSize: c.ChunkSize,
		Direction: c.Direction(),
		Variant:   c.Variant(),
	}
}

// Validate checks the settings before any stream is opened.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("chunk size must be positive, got %d", c.ChunkSize).
			Build()
	}
	switch c.Report {
	case ReportNone, ReportJSON:
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown report format "+strconv.Quote(c.Report))
	}
	return c.StreamOptions(nil).Validate()
}

// IsStdio reports whether name selects standard input or output.
func IsStdio(name string) bool {
	return name == "" || name == "-"
}
