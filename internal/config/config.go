package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	InputPath string   `yaml:"input"`
	OutputDir string   `yaml:"output_dir"`
	DeckPath  string   `yaml:"deck"`
	Formats   []string `yaml:"formats"`
	Languages []string `yaml:"languages"`
	DPI       int      `yaml:"dpi"`
	PSM       int      `yaml:"psm"`       // Tesseract page segmentation mode, 0 keeps the engine default
	MinWidth  int      `yaml:"min_width"` // narrower slides are upscaled before OCR
	Workers   int      `yaml:"workers"`   // 0 sizes the pool from CPU and memory
	Copy      bool     `yaml:"copy"`
	Show      bool     `yaml:"show"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the settings used when neither a config file nor flags override them.
func Default() *Config {
	return &Config{
		OutputDir: "output",
		Formats:   []string{"md"},
		Languages: []string{"eng"},
		DPI:       300,
		MinWidth:  1600,
		Show:      true,
	}
}

// Load reads a YAML config file on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidConfig, c.DPI)
	}
	if c.PSM < 0 || c.PSM > 13 {
		return fmt.Errorf("%w: psm must be between 0 and 13, got %d", ErrInvalidConfig, c.PSM)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.MinWidth < 0 {
		return fmt.Errorf("%w: min_width must not be negative, got %d", ErrInvalidConfig, c.MinWidth)
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("%w: at least one OCR language is required", ErrInvalidConfig)
	}
	return nil
}

// SplitList parses comma separated flag values such as "md,txt".
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
