// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package config loads the sdlvkdemo configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides
// the configuration path.
const EnvPath = "SDLVK_CONFIG"

// DefaultPath is the configuration path used when EnvPath
// is not set.
const DefaultPath = "sdlvkdemo.yaml"

// Config is the demo configuration.
type Config struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	ImageCount int        `yaml:"image_count"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA, each in [0, 1]
	LogLevel   string     `yaml:"log_level"`   // debug, info, warn or error
	VSync      bool       `yaml:"vsync"`
}

// DefaultConfig returns the configuration used when no
// file is present.
func DefaultConfig() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		Title:      "sdlvk",
		ImageCount: 3,
		ClearColor: [4]float32{0, 0, 1, 1},
		LogLevel:   "info",
		VSync:      true,
	}
}

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return "config: " + e.Path + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks that c is usable.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height <= 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.ImageCount < 1 {
		return &ValidationError{Path: "image_count", Err: fmt.Errorf("image_count must be >= 1")}
	}
	for i, x := range c.ClearColor {
		if !(x >= 0 && x <= 1) {
			return &ValidationError{Path: fmt.Sprintf("clear_color[%d]", i), Err: fmt.Errorf("color components must be in [0, 1]")}
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// Level returns the slog level named by c.LogLevel.
// It returns slog.LevelInfo if the name is not valid.
func (c *Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
}

// Path returns the configuration path, honoring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads the configuration from Path.
func Load() (*Config, error) {
	return LoadFromPath(Path())
}

// LoadFromPath loads the configuration from path.
// Fields missing from the file keep their default values.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %q: %w", path, err)
	}
	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
