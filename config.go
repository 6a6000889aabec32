package depthcube

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Rotating Cube + Depth Debug"
)

// DefaultClearColor is the background colour.
var DefaultClearColor = Color{0.2, 0.3, 0.3, 1}

// Config holds the window and scene settings. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	ClearColor Color  `yaml:"clearColor,flow"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		VSync:      true,
		ClearColor: DefaultClearColor,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a window that can be created.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clearColor[%d] = %v out of [0, 1]", ErrInvalidConfig, i, v)
		}
	}
	return nil
}
