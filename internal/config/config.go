// Package config resolves runtime defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/divergent/internal/analysis"
	"github.com/jmylchreest/divergent/internal/diverging"
)

// Environment variables read by WithEnvConfig.
const (
	EnvFormat            = "DIVERGENT_FORMAT"
	EnvThreshold         = "DIVERGENT_THRESHOLD"
	EnvLogLevel          = "DIVERGENT_LOG_LEVEL"
	EnvParallelThreshold = "DIVERGENT_PARALLEL_THRESHOLD"
	EnvPreset            = "DIVERGENT_PRESET"
	EnvNoColour          = "NO_COLOR"
)

// Config holds defaults that commands fall back to when a flag is not given.
type Config struct {
	Format            diverging.Format
	Threshold         float64
	LogLevel          hclog.Level
	ParallelThreshold int
	Preset            string
	NoColour          bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:            diverging.FormatHex,
		Threshold:         analysis.DefaultProximityThreshold,
		LogLevel:          hclog.Warn,
		ParallelThreshold: diverging.DefaultParallelThreshold,
	}
}

// Builder assembles a Config from defaults, a .env file and the process
// environment, in that order of increasing precedence.
type Builder struct {
	config    Config
	useEnv    bool
	dotEnv    []string
	lookupEnv func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config:    Default(),
		lookupEnv: os.LookupEnv,
	}
}

// WithConfig replaces the starting configuration.
func (b *Builder) WithConfig(c Config) *Builder {
	b.config = c
	return b
}

// WithEnvConfig reads the DIVERGENT_* variables and NO_COLOR.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithDotEnv loads the given files (".env" when none are given) into the
// process environment before reading it. Missing files are ignored;
// variables already set in the environment win.
func (b *Builder) WithDotEnv(paths ...string) *Builder {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	b.dotEnv = paths
	b.useEnv = true
	return b
}

// Build resolves the configuration. Malformed values are errors naming the
// variable.
func (b *Builder) Build() (Config, error) {
	c := b.config

	for _, path := range b.dotEnv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if !b.useEnv {
		return c, nil
	}

	if v, ok := b.env(EnvFormat); ok {
		f, err := diverging.ParseFormat(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Format = f
	}

	if v, ok := b.env(EnvThreshold); ok {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 {
			return c, fmt.Errorf("%s: invalid threshold %q", EnvThreshold, v)
		}
		c.Threshold = t
	}

	if v, ok := b.env(EnvLogLevel); ok {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			return c, fmt.Errorf("%s: unknown log level %q (valid: trace, debug, info, warn, error, off)", EnvLogLevel, v)
		}
		c.LogLevel = level
	}

	if v, ok := b.env(EnvParallelThreshold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: invalid integer %q", EnvParallelThreshold, v)
		}
		c.ParallelThreshold = n
	}

	if v, ok := b.env(EnvPreset); ok {
		c.Preset = v
	}

	// NO_COLOR disables colour when present, whatever its value.
	if _, ok := b.lookupEnv(EnvNoColour); ok {
		c.NoColour = true
	}

	return c, nil
}

// env returns a trimmed, non-empty variable.
func (b *Builder) env(key string) (string, bool) {
	v, ok := b.lookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
