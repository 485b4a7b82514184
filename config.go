package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and the Game driving the scene.
type RunConfig struct {
	Title         string `yaml:"title" validate:"required"`
	Width         int    `yaml:"width" validate:"gt=0"`
	Height        int    `yaml:"height" validate:"gt=0"`
	Resizable     bool   `yaml:"resizable"`
	TPS           int    `yaml:"tps" validate:"gte=0,lte=1000"`
	ClearColor    Color  `yaml:"clear_color"`
	ShowFPS       bool   `yaml:"show_fps"`
	ExitOnEscape  bool   `yaml:"exit_on_escape"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir" validate:"required"`
	Metrics       bool   `yaml:"metrics"`
}

// DefaultRunConfig returns the configuration used for fields a config file
// leaves out.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "OpenTransit Engine",
		Width:         1920,
		Height:        1080,
		Resizable:     true,
		ClearColor:    ColorWhite,
		ExitOnEscape:  true,
		ScreenshotDir: "screenshots",
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c RunConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid run config: %w", err)
	}
	return nil
}

// ParseRunConfig decodes YAML over DefaultRunConfig and validates the result.
// Unknown keys are rejected.
func ParseRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// LoadRunConfig reads and parses the YAML file at path.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	return ParseRunConfig(data)
}
