// Package config reads and writes the per-user settings file.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

// Config holds the user-tunable settings read at startup.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	Background   string // hex notation, e.g. "#ffffff"
	Thickness    float64
	ExportDir    string
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		CanvasWidth:  1024,
		CanvasHeight: 768,
		Background:   "#ffffff",
		Thickness:    3,
	}
}

// Dir returns the per-user config directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "artboardpro")
}

// Load reads the config file from dir. A missing or unreadable file falls
// back to defaults: the app must start regardless. Individual out-of-range
// values are replaced by their defaults rather than rejecting the file.
func Load(dir string) *Config {
	cfg := Default()
	path := filepath.Join(dir, fileName)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[CONFIG] couldn't read %s: %v, using defaults", path, err)
		}
		return Default()
	}

	def := Default()
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.Thickness <= 0 {
		cfg.Thickness = def.Thickness
	}
	if cfg.Background == "" {
		cfg.Background = def.Background
	}
	return cfg
}

// Save writes the config file into dir, creating the directory if needed.
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, fileName), buf.Bytes(), 0o644)
}

// BackgroundColor parses the configured background value, falling back to
// white on a malformed one.
func (c *Config) BackgroundColor() color.NRGBA {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		log.Printf("[CONFIG] bad background color %q: %v", c.Background, err)
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return col
}

// ParseHexColor parses "#rgb" and "#rrggbb" notations into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("hex color must start with '#', got %q", s)
	}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("hex color must be 4 or 7 characters, got %d", len(s))
	}
	return c, err
}
