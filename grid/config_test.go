// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
font:
  size: 16
grid:
  cols: 100
  rows: 30
cursor:
  style: bar
  visible: true
palette:
  foreground: "#ffffff"
  background: black
  ansi: [navy, "#102030"]
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Font.Size != 16 || cfg.Grid.Cols != 100 || cfg.Grid.Rows != 30 {
		t.Errorf("cfg = %+v", cfg)
	}

	var o options
	o.palette = DefaultPalette()
	if err := cfg.apply(&o); err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if o.cursorStyle != CursorBar || !o.cursorVisible {
		t.Errorf("cursor = %v visible=%v", o.cursorStyle, o.cursorVisible)
	}
	if o.palette.Foreground != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("foreground = %v", o.palette.Foreground)
	}
	if o.palette.Background != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("background = %v", o.palette.Background)
	}
	if o.palette.ANSI[0] != (color.RGBA{0, 0, 0x80, 0xff}) {
		t.Errorf("ansi[0] = %v, want navy", o.palette.ANSI[0])
	}
	if o.palette.ANSI[1] != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("ansi[1] = %v", o.palette.ANSI[1])
	}
	if o.palette.ANSI[2] != xtermColor(2) {
		t.Errorf("ansi[2] = %v, want default", o.palette.ANSI[2])
	}
	if o.palette.Cursor != DefaultPalette().Cursor {
		t.Errorf("cursor colour changed without config: %v", o.palette.Cursor)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) error = %v", err)
	}
	def := DefaultConfig()
	if cfg.Font != def.Font || cfg.Grid != def.Grid || cfg.Cursor != def.Cursor {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"font size", "font: {size: 0}", "font.size"},
		{"cols", "grid: {cols: 0}", "grid.cols"},
		{"rows", "grid: {rows: 99999}", "grid.rows"},
		{"cursor", "cursor: {style: zigzag}", "cursor.style"},
		{"colour", "palette: {foreground: notacolour}", "palette.foreground"},
		{"ansi entry", "palette: {ansi: [red, bogus]}", "palette.ansi[1]"},
		{"ansi length", "palette: {ansi: [a,b,c,d,e,f,g,h,i,j,k,l,m,n,o,p,q]}", "palette.ansi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("ParseConfig() error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}

	if _, err := ParseConfig([]byte("font: [")); err == nil {
		t.Error("ParseConfig(malformed) error = nil")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggterm.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Grid.Cols != 100 {
		t.Errorf("Grid.Cols = %d, want 100", cfg.Grid.Cols)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}
}

func TestWithConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	g, err := New(WithConfig(cfg), WithSize(12, 5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer g.Close()

	if cols, rows, _ := g.Size(); cols != 12 || rows != 5 {
		t.Errorf("Size() = %d, %d, want later option to win", cols, rows)
	}
	if !g.CursorVisible() || g.CursorStyle() != CursorBar {
		t.Errorf("cursor = %v visible=%v", g.CursorStyle(), g.CursorVisible())
	}
	if g.Palette().Background != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("background = %v", g.Palette().Background)
	}

	bad := cfg
	bad.Cursor.Style = "zigzag"
	if _, err := New(WithConfig(bad)); err == nil {
		t.Error("New(WithConfig(bad)) error = nil")
	}
}
