// Package config carries the runtime settings of the lvlviz binary:
// the HTTP listen address, log level, default pacing level and the
// input caps the serving surface enforces. Defaults are package
// constants; a YAML file and LVLVIZ_* environment variables overlay
// them, file first.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlviz/step"
)

// Config holds every tunable of the lvlviz binary.
type Config struct {
	// Addr is the HTTP listen address of the serving surface.
	Addr string

	// LogLevel names the slog level: debug, info, warn or error.
	LogLevel string

	// DefaultSpeed is the pacing level applied when a request or
	// command names none.
	DefaultSpeed int

	// MaxArrayLen caps the element count a sort request may carry.
	MaxArrayLen int

	// MaxVertices caps the vertex count of parsed and random graphs.
	MaxVertices int

	// ShutdownTimeout bounds the graceful HTTP shutdown.
	ShutdownTimeout time.Duration
}

// Defaults and validation ceilings.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultMaxArrayLen     = 128
	DefaultMaxVertices     = 64
	DefaultShutdownTimeout = 10 * time.Second

	// MaxArrayLenCap and MaxVerticesCap bound what the caps themselves
	// may be raised to; a visualization beyond them is unreadable anyway.
	MaxArrayLenCap = 4096
	MaxVerticesCap = 1024
)

// Sentinel errors surfaced by Validate, LoadFile and LoadFromEnv.
var (
	// ErrAddr indicates an empty listen address.
	ErrAddr = errors.New("config: listen address is empty")

	// ErrLogLevel indicates a level name outside debug/info/warn/error.
	ErrLogLevel = errors.New("config: unknown log level")

	// ErrSpeed indicates a default speed outside the pacing range.
	ErrSpeed = errors.New("config: default speed out of range")

	// ErrLimit indicates a non-positive or over-cap input limit.
	ErrLimit = errors.New("config: input limit out of range")

	// ErrTimeout indicates a non-positive shutdown timeout.
	ErrTimeout = errors.New("config: shutdown timeout must be positive")

	// ErrFile indicates an unreadable or malformed config file.
	ErrFile = errors.New("config: bad config file")

	// ErrEnv indicates an unparsable LVLVIZ_* environment value.
	ErrEnv = errors.New("config: bad environment value")
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		Addr:            DefaultAddr,
		LogLevel:        DefaultLogLevel,
		DefaultSpeed:    step.DefaultSpeed,
		MaxArrayLen:     DefaultMaxArrayLen,
		MaxVertices:     DefaultMaxVertices,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Level maps LogLevel onto its slog level, falling back to info for
// names Validate would reject.
func (c *Config) Level() slog.Level {
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// fileConfig mirrors Config for YAML overlays. Pointer fields keep
// absent keys from zeroing settled values; the timeout travels as a
// duration string ("10s") because YAML has no native duration.
type fileConfig struct {
	Addr            *string `yaml:"addr"`
	LogLevel        *string `yaml:"log_level"`
	DefaultSpeed    *int    `yaml:"default_speed"`
	MaxArrayLen     *int    `yaml:"max_array_len"`
	MaxVertices     *int    `yaml:"max_vertices"`
	ShutdownTimeout *string `yaml:"shutdown_timeout"`
}

// LoadFile overlays c with the YAML document at path. Keys absent from
// the file leave their settings untouched; unknown keys are rejected.
// Returns ErrFile wrapped around the underlying cause.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&fc); err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}

	if fc.Addr != nil {
		c.Addr = *fc.Addr
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.DefaultSpeed != nil {
		c.DefaultSpeed = *fc.DefaultSpeed
	}
	if fc.MaxArrayLen != nil {
		c.MaxArrayLen = *fc.MaxArrayLen
	}
	if fc.MaxVertices != nil {
		c.MaxVertices = *fc.MaxVertices
	}
	if fc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("%w: shutdown_timeout: %v", ErrFile, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// LoadFromEnv overlays c with LVLVIZ_* environment variables. Unset
// variables leave their settings untouched. Returns ErrEnv wrapped
// around the first unparsable value.
func (c *Config) LoadFromEnv() error {
	if addr := os.Getenv("LVLVIZ_ADDR"); addr != "" {
		c.Addr = addr
	}
	if level := os.Getenv("LVLVIZ_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if err := loadEnvInt("LVLVIZ_DEFAULT_SPEED", &c.DefaultSpeed); err != nil {
		return err
	}
	if err := loadEnvInt("LVLVIZ_MAX_ARRAY_LEN", &c.MaxArrayLen); err != nil {
		return err
	}
	if err := loadEnvInt("LVLVIZ_MAX_VERTICES", &c.MaxVertices); err != nil {
		return err
	}
	if raw := os.Getenv("LVLVIZ_SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: LVLVIZ_SHUTDOWN_TIMEOUT=%q", ErrEnv, raw)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// loadEnvInt parses key into *dst when the variable is set. Range
// checking stays with Validate so env and file overlays fail alike.
func loadEnvInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrEnv, key, raw)
	}
	*dst = v
	return nil
}

// Validate checks every setting and returns the first violation.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return ErrAddr
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}
	if _, err := step.Delay(c.DefaultSpeed); err != nil {
		return fmt.Errorf("%w: %d", ErrSpeed, c.DefaultSpeed)
	}
	if c.MaxArrayLen < 1 || c.MaxArrayLen > MaxArrayLenCap {
		return fmt.Errorf("%w: max_array_len %d", ErrLimit, c.MaxArrayLen)
	}
	if c.MaxVertices < 1 || c.MaxVertices > MaxVerticesCap {
		return fmt.Errorf("%w: max_vertices %d", ErrLimit, c.MaxVertices)
	}
	if c.ShutdownTimeout <= 0 {
		return ErrTimeout
	}
	return nil
}
