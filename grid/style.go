// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

// Color is a terminal colour: the default colour, a palette index, or a
// 24-bit RGB value. The zero value is ColorDefault.
type Color uint32

const (
	colorKindMask = 0xFF000000
	colorIndexed  = 0x01000000
	colorRGB      = 0x02000000
)

// ColorDefault selects the palette's default foreground or background.
const ColorDefault Color = 0

// The 16 ANSI colours.
const (
	ColorBlack Color = colorIndexed + iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Indexed returns the palette colour i (0-255).
func Indexed(i uint8) Color {
	return Color(colorIndexed | uint32(i))
}

// RGB returns a true colour.
func RGB(r, g, b uint8) Color {
	return Color(colorRGB | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex returns a true colour from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color(colorRGB | v&0xFFFFFF)
}

// IsDefault reports whether c is ColorDefault.
func (c Color) IsDefault() bool {
	return c&colorKindMask == 0
}

// Index returns the palette index of an indexed colour.
func (c Color) Index() (uint8, bool) {
	if c&colorKindMask != colorIndexed {
		return 0, false
	}
	return uint8(c), true
}

// RGB returns the components of a true colour.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c&colorKindMask != colorRGB {
		return 0, 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// Attr is a bitmask of text attributes.
type Attr uint16

// Attribute flags.
const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough

	AttrNone Attr = 0
)

// Style combines foreground, background and attributes.
// The zero value uses default colours and no attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Foreground returns s with the foreground colour set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s with the background colour set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style { return s.with(AttrBold, on) }

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style { return s.with(AttrDim, on) }

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style { return s.with(AttrItalic, on) }

// Underline enables or disables underline.
func (s Style) Underline(on bool) Style { return s.with(AttrUnderline, on) }

// Reverse enables or disables reverse video.
func (s Style) Reverse(on bool) Style { return s.with(AttrReverse, on) }

// Strikethrough enables or disables strikethrough.
func (s Style) Strikethrough(on bool) Style { return s.with(AttrStrikethrough, on) }

// Has reports whether all attributes in a are set.
func (s Style) Has(a Attr) bool {
	return s.Attrs&a == a
}

func (s Style) with(a Attr, on bool) Style {
	if on {
		s.Attrs |= a
	} else {
		s.Attrs &^= a
	}
	return s
}
