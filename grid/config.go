// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the grid options.
//
//	font:
//	  path: ""        # empty selects Go Mono
//	  size: 14
//	grid:
//	  cols: 80
//	  rows: 24
//	cursor:
//	  style: block    # block, underline or bar
//	  visible: false
//	palette:
//	  foreground: "#c0caf5"
//	  background: "#1a1b26"
//	  cursor: "#c0caf5"
//	  ansi: [black, maroon, green, ...]
type Config struct {
	Font    FontConfig    `yaml:"font"`
	Grid    SizeConfig    `yaml:"grid"`
	Cursor  CursorConfig  `yaml:"cursor"`
	Palette PaletteConfig `yaml:"palette"`
}

// FontConfig selects the font.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// SizeConfig is the initial grid size in cells.
type SizeConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// CursorConfig is the initial cursor state.
type CursorConfig struct {
	Style   string `yaml:"style"`
	Visible bool   `yaml:"visible"`
}

// PaletteConfig holds colour names or #rrggbb values. Empty entries keep
// the default palette.
type PaletteConfig struct {
	Foreground string   `yaml:"foreground"`
	Background string   `yaml:"background"`
	Cursor     string   `yaml:"cursor"`
	ANSI       []string `yaml:"ansi"`
}

const (
	maxFontSize = 512
	maxCells    = 4096
)

// DefaultConfig returns the configuration matching the default options.
func DefaultConfig() Config {
	return Config{
		Font:   FontConfig{Size: 14},
		Grid:   SizeConfig{Cols: 80, Rows: 24},
		Cursor: CursorConfig{Style: CursorBlock.String()},
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("grid: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("grid: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks every field.
func (c Config) Validate() error {
	var o options
	return c.apply(&o)
}

// apply writes the config into o, stopping at the first invalid field.
func (c Config) apply(o *options) error {
	if c.Font.Size <= 0 || c.Font.Size > maxFontSize {
		return &ConfigError{Field: "font.size", Value: strconv.FormatFloat(c.Font.Size, 'g', -1, 64)}
	}
	if c.Grid.Cols < 1 || c.Grid.Cols > maxCells {
		return &ConfigError{Field: "grid.cols", Value: strconv.Itoa(c.Grid.Cols)}
	}
	if c.Grid.Rows < 1 || c.Grid.Rows > maxCells {
		return &ConfigError{Field: "grid.rows", Value: strconv.Itoa(c.Grid.Rows)}
	}
	style, err := ParseCursorStyle(c.Cursor.Style)
	if err != nil {
		return &ConfigError{Field: "cursor.style", Value: c.Cursor.Style, Err: err}
	}
	pal := o.palette
	if pal == (Palette{}) {
		pal = DefaultPalette()
	}
	if err := c.Palette.apply(&pal); err != nil {
		return err
	}

	o.fontSize = c.Font.Size
	if c.Font.Path != "" {
		o.fontPath = c.Font.Path
		o.fontData = nil
	}
	o.cols, o.rows = c.Grid.Cols, c.Grid.Rows
	o.cursorStyle = style
	o.cursorVisible = c.Cursor.Visible
	o.palette = pal
	return nil
}

func (pc PaletteConfig) apply(p *Palette) error {
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"palette.foreground", pc.Foreground, &p.Foreground},
		{"palette.background", pc.Background, &p.Background},
		{"palette.cursor", pc.Cursor, &p.Cursor},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := parseColor(f.name, f.value)
		if err != nil {
			return err
		}
		*f.dst = c
	}

	if len(pc.ANSI) > len(p.ANSI) {
		return &ConfigError{
			Field: "palette.ansi",
			Value: strconv.Itoa(len(pc.ANSI)),
			Err:   fmt.Errorf("at most %d colours", len(p.ANSI)),
		}
	}
	for i, v := range pc.ANSI {
		if v == "" {
			continue
		}
		c, err := parseColor(fmt.Sprintf("palette.ansi[%d]", i), v)
		if err != nil {
			return err
		}
		p.ANSI[i] = c
	}
	return nil
}

var errUnknownColor = errors.New("unknown colour")

// parseColor accepts tcell colour names and #rrggbb.
func parseColor(field, v string) (color.RGBA, error) {
	tc := tcell.GetColor(strings.ToLower(strings.TrimSpace(v)))
	if tc == tcell.ColorDefault || !tc.Valid() {
		return color.RGBA{}, &ConfigError{Field: field, Value: v, Err: errUnknownColor}
	}
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return color.RGBA{}, &ConfigError{Field: field, Value: v, Err: errUnknownColor}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}
