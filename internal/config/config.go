// Package config loads the demo's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/wgpu/hal"
	"gopkg.in/yaml.v3"
)

// Config is the demo configuration. Zero fields are filled from Default.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetConfig  `yaml:"assets"`
	Scene  SceneConfig  `yaml:"scene"`

	// PresentMode is "mailbox", "fifo" or "immediate".
	PresentMode string `yaml:"present_mode"`
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AssetConfig locates the shader and texture. Relative paths resolve
// against Dir. An empty Shader selects the embedded default shader.
type AssetConfig struct {
	Dir     string `yaml:"dir"`
	Shader  string `yaml:"shader"`
	Texture string `yaml:"texture"`
}

type SceneConfig struct {
	// GridSize is the number of instances per row and column.
	GridSize int `yaml:"grid_size"`
	// Displacement recenters the grid around the origin.
	Displacement float32 `yaml:"displacement"`
	// RotationSpeed is in radians per second about Y.
	RotationSpeed float32 `yaml:"rotation_speed"`
	CameraSpeed   float32 `yaml:"camera_speed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "g3d"},
		Assets: AssetConfig{Dir: "assets", Texture: "happy-tree.png"},
		Scene: SceneConfig{
			GridSize:      10,
			Displacement:  5,
			RotationSpeed: 2,
			CameraSpeed:   0.2,
		},
		PresentMode: "mailbox",
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config: no file, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Scene.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid_size %d must be positive", c.Scene.GridSize))
	}
	if c.Scene.CameraSpeed < 0 {
		errs = append(errs, fmt.Errorf("camera_speed %v must not be negative", c.Scene.CameraSpeed))
	}
	if _, err := c.PresentModeValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PresentModeValue maps PresentMode to the HAL constant.
func (c Config) PresentModeValue() (hal.PresentMode, error) {
	switch strings.ToLower(c.PresentMode) {
	case "mailbox":
		return hal.PresentModeMailbox, nil
	case "fifo", "vsync":
		return hal.PresentModeFifo, nil
	case "immediate":
		return hal.PresentModeImmediate, nil
	default:
		return hal.PresentModeFifo, fmt.Errorf("unknown present_mode %q", c.PresentMode)
	}
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return l, nil
}

// AssetPath resolves name against the asset directory.
func (c Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
