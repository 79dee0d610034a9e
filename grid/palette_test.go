// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"image/color"
	"testing"
)

func TestXtermColor(t *testing.T) {
	tests := []struct {
		index uint8
		want  color.RGBA
	}{
		{0, color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{1, color.RGBA{0xcd, 0x00, 0x00, 0xff}},
		{4, color.RGBA{0x00, 0x00, 0xee, 0xff}},
		{7, color.RGBA{0xe5, 0xe5, 0xe5, 0xff}},
		{8, color.RGBA{0x7f, 0x7f, 0x7f, 0xff}},
		{9, color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{12, color.RGBA{0x5c, 0x5c, 0xff, 0xff}},
		{15, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{21, color.RGBA{0x00, 0x00, 0xff, 0xff}},
		{16, color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{196, color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{231, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{232, color.RGBA{0x08, 0x08, 0x08, 0xff}},
	}
	for _, tt := range tests {
		if got := xtermColor(tt.index); got != tt.want {
			t.Errorf("xtermColor(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	p.ANSI[2] = color.RGBA{1, 2, 3, 0xff}
	def := color.RGBA{9, 9, 9, 0xff}

	if got := p.Color(ColorDefault, def); got != def {
		t.Errorf("default = %v, want %v", got, def)
	}
	if got := p.Color(ColorGreen, def); got != p.ANSI[2] {
		t.Errorf("ColorGreen = %v, want palette override %v", got, p.ANSI[2])
	}
	if got := p.Color(Indexed(232), def); got != (color.RGBA{8, 8, 8, 0xff}) {
		t.Errorf("Indexed(232) = %v", got)
	}
	if got := p.Color(RGB(10, 20, 30), def); got != (color.RGBA{10, 20, 30, 0xff}) {
		t.Errorf("RGB = %v", got)
	}
}

func TestPaletteResolve(t *testing.T) {
	p := DefaultPalette()
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0, 0, 0, 0xff}
	base := Style{Fg: RGB(0xff, 0xff, 0xff), Bg: RGB(0, 0, 0)}

	tests := []struct {
		name   string
		style  Style
		fg, bg color.RGBA
	}{
		{"plain", base, white, black},
		{"defaults", Style{}, p.Foreground, p.Background},
		{"reverse", base.Reverse(true), black, white},
		{"dim", base.Dim(true), color.RGBA{0x7f, 0x7f, 0x7f, 0xff}, black},
		{"dim on colour", Style{Fg: RGB(200, 100, 50), Bg: RGB(0, 0, 255)}.Dim(true), color.RGBA{100, 50, 25, 0xff}, color.RGBA{0, 0, 0xff, 0xff}},
		{"hidden", Style{Fg: base.Fg, Bg: base.Bg, Attrs: AttrHidden}, black, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, bg := p.resolve(tt.style)
			if fg != tt.fg || bg != tt.bg {
				t.Errorf("resolve() = %v, %v, want %v, %v", fg, bg, tt.fg, tt.bg)
			}
		})
	}
}

func TestDefaultPaletteANSI(t *testing.T) {
	p := DefaultPalette()
	if p.ANSI[1] != (color.RGBA{0xcd, 0x00, 0x00, 0xff}) {
		t.Errorf("ANSI[1] = %v, want xterm red", p.ANSI[1])
	}
	if got := p.Color(ColorBrightBlue, p.Foreground); got != (color.RGBA{0x5c, 0x5c, 0xff, 0xff}) {
		t.Errorf("ColorBrightBlue = %v, want xterm bright blue", got)
	}
	if got := p.Color(Indexed(4), p.Foreground); got != p.ANSI[4] {
		t.Errorf("Indexed(4) = %v, want %v", got, p.ANSI[4])
	}
}
