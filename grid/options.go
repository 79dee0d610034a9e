// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

// Option configures a Grid during creation.
//
// Example:
//
//	g, err := grid.New(
//	    grid.WithSize(120, 40),
//	    grid.WithFontSize(16),
//	    grid.WithCursorStyle(grid.CursorBar),
//	)
type Option func(*options)

type options struct {
	cols, rows    int
	fontSize      float64
	fontData      []byte
	fontPath      string
	palette       Palette
	cursorStyle   CursorStyle
	cursorVisible bool
	err           error
}

func defaultOptions() options {
	return options{
		cols:        80,
		rows:        24,
		fontSize:    14,
		palette:     DefaultPalette(),
		cursorStyle: CursorBlock,
	}
}

// WithSize sets the initial grid size in cells.
func WithSize(cols, rows int) Option {
	return func(o *options) {
		o.cols, o.rows = cols, rows
	}
}

// WithFontSize sets the font size in points.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.fontSize = size
	}
}

// WithFontData uses the given TTF/OTF data for all text instead of Go Mono.
// The font should be monospaced; cell width comes from the advance of "M".
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
		o.fontPath = ""
	}
}

// WithFontFile loads the font from path at creation time.
func WithFontFile(path string) Option {
	return func(o *options) {
		o.fontPath = path
		o.fontData = nil
	}
}

// WithPalette sets the colour palette.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithCursorStyle sets the initial cursor style.
func WithCursorStyle(s CursorStyle) Option {
	return func(o *options) {
		o.cursorStyle = s
	}
}

// WithCursorVisible sets the initial cursor visibility. The cursor is
// hidden by default.
func WithCursorVisible(visible bool) Option {
	return func(o *options) {
		o.cursorVisible = visible
	}
}

// WithConfig applies a Config. It is validated by New, and options given
// after it override its values.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if err := cfg.apply(o); err != nil && o.err == nil {
			o.err = err
		}
	}
}
