// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Palette maps terminal colours to pixels.
type Palette struct {
	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA

	// ANSI holds colours 0-15. Indices 16-255 always use the xterm table.
	ANSI [16]color.RGBA
}

// xtermBasic holds xterm's default colours 0-15.
var xtermBasic = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xcd, 0x00, 0x00, 0xff},
	{0x00, 0xcd, 0x00, 0xff},
	{0xcd, 0xcd, 0x00, 0xff},
	{0x00, 0x00, 0xee, 0xff},
	{0xcd, 0x00, 0xcd, 0xff},
	{0x00, 0xcd, 0xcd, 0xff},
	{0xe5, 0xe5, 0xe5, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x5c, 0x5c, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// DefaultPalette returns a dark palette with the xterm ANSI colours.
func DefaultPalette() Palette {
	p := Palette{
		Foreground: color.RGBA{R: 0xc0, G: 0xca, B: 0xf5, A: 0xff},
		Background: color.RGBA{R: 0x1a, G: 0x1b, B: 0x26, A: 0xff},
		Cursor:     color.RGBA{R: 0xc0, G: 0xca, B: 0xf5, A: 0xff},
	}
	p.ANSI = xtermBasic
	return p
}

// xtermColor returns entry i of the xterm 256-colour table. tcell's table
// matches xterm for the colour cube and the grey ramp only.
func xtermColor(i uint8) color.RGBA {
	if i < 16 {
		return xtermBasic[i]
	}
	r, g, b := tcell.PaletteColor(int(i)).RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// Color resolves c, using def for ColorDefault.
func (p *Palette) Color(c Color, def color.RGBA) color.RGBA {
	if r, g, b, ok := c.RGB(); ok {
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	if i, ok := c.Index(); ok {
		if i < 16 {
			return p.ANSI[i]
		}
		return xtermColor(i)
	}
	return def
}

// resolve returns the pixel colours of a style after reverse, dim and hidden.
func (p *Palette) resolve(s Style) (fg, bg color.RGBA) {
	fg = p.Color(s.Fg, p.Foreground)
	bg = p.Color(s.Bg, p.Background)
	if s.Attrs&AttrReverse != 0 {
		fg, bg = bg, fg
	}
	if s.Attrs&AttrDim != 0 {
		fg = half(fg)
	}
	if s.Attrs&AttrHidden != 0 {
		fg = bg
	}
	return fg, bg
}

// half returns c at half intensity.
func half(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0xff}
}
