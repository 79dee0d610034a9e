// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/gogpu/ggterm/grid"
	"github.com/gogpu/ggterm/internal/logging"
)

// Backend draws a terminal UI on a grid.Grid and presents it through a
// shared graphics context.
//
// Every method forwards to the grid or the presenter. Backend keeps no
// state beyond the two handles and its options.
type Backend struct {
	grid *grid.Grid
	gc   grid.Presenter
	opts options
}

// New creates a Backend for g that presents through gc.
//
// Returns ErrNilGrid or ErrNilContext when either handle is nil, and the
// presenter's own error when it reports itself unusable through an
// Err() error method.
func New(g *grid.Grid, gc grid.Presenter, opts ...Option) (*Backend, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if isNil(gc) {
		return nil, ErrNilContext
	}
	if e, ok := gc.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return nil, fmt.Errorf("ggterm: graphics context unusable: %w", err)
		}
	}

	b := &Backend{grid: g, gc: gc}
	for _, opt := range opts {
		opt(&b.opts)
	}
	logging.Logger().Debug("ggterm: backend created",
		"presenter", fmt.Sprintf("%T", gc), "strict", b.opts.strict)
	return b, nil
}

// isNil reports whether v is nil or holds a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Grid returns the grid the backend draws on.
func (b *Backend) Grid() *grid.Grid {
	return b.grid
}

// Presenter returns the graphics context handle.
func (b *Backend) Presenter() grid.Presenter {
	return b.gc
}

// Size returns the grid size in cells.
// Returns ErrUnavailable when the grid has no drawable area.
func (b *Backend) Size() (Size, error) {
	cols, rows, err := b.grid.Size()
	if err != nil {
		return Size{}, err
	}
	return Size{Cols: cols, Rows: rows}, nil
}

// WindowSize returns the grid size in cells and pixels.
func (b *Backend) WindowSize() (WindowSize, error) {
	s, err := b.Size()
	if err != nil {
		return WindowSize{}, err
	}
	w, h := b.grid.PixelSize()
	return WindowSize{Cells: s, Width: w, Height: h}, nil
}

// SetCell writes one cell. Positions outside the grid are ignored unless
// the backend was created WithStrictBounds.
func (b *Backend) SetCell(pos Position, c grid.Cell) error {
	err := b.grid.SetCell(pos.X, pos.Y, c)
	if err != nil && !b.opts.strict && errors.Is(err, grid.ErrOutOfBounds) {
		return nil
	}
	return err
}

// SetContent writes mainc followed by the combining runes comb at (x, y).
// A zero-width or control mainc is written as a space.
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style grid.Style) error {
	if unicode.IsControl(mainc) || runewidth.RuneWidth(mainc) == 0 {
		mainc = ' '
		comb = nil
	}
	sym := string(mainc)
	if len(comb) > 0 {
		sym += string(comb)
	}
	return b.SetCell(Position{X: x, Y: y}, grid.NewCell(sym, style))
}

// Draw writes a sequence of cells, typically the diff between two frames
// of a framework buffer. It stops at the first error.
func (b *Backend) Draw(cells iter.Seq2[Position, grid.Cell]) error {
	for pos, c := range cells {
		if err := b.SetCell(pos, c); err != nil {
			return err
		}
	}
	return nil
}

// Flush paints the damaged cells and presents the frame.
// Errors from the graphics context are returned unchanged.
func (b *Backend) Flush() error {
	return b.grid.Present(b.gc)
}

// Clear erases every cell.
func (b *Backend) Clear() error {
	return b.grid.Clear()
}

// ClearRegion erases the cells selected by t, relative to the cursor.
func (b *Backend) ClearRegion(t ClearType) error {
	if t == ClearAll {
		return b.Clear()
	}
	s, err := b.Size()
	if err != nil {
		return err
	}
	x, y := b.grid.Cursor()
	i := y*s.Cols + x
	line := y * s.Cols

	switch t {
	case ClearAfterCursor:
		return b.grid.ClearRange(i, s.Cols*s.Rows)
	case ClearBeforeCursor:
		return b.grid.ClearRange(0, i+1)
	case ClearCurrentLine:
		return b.grid.ClearRange(line, line+s.Cols)
	case ClearUntilNewLine:
		return b.grid.ClearRange(i, line+s.Cols)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownClearType, t)
	}
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() error {
	b.grid.SetCursorVisible(false)
	return nil
}

// ShowCursor shows the cursor.
func (b *Backend) ShowCursor() error {
	b.grid.SetCursorVisible(true)
	return nil
}

// CursorPosition returns the cursor position.
func (b *Backend) CursorPosition() (Position, error) {
	x, y := b.grid.Cursor()
	return Position{X: x, Y: y}, nil
}

// SetCursorPosition moves the cursor. The grid clamps pos to its bounds.
func (b *Backend) SetCursorPosition(pos Position) error {
	b.grid.SetCursor(pos.X, pos.Y)
	return nil
}

// AppendLines moves the cursor down n lines to the first column, scrolling
// the grid up when the cursor passes the last row.
func (b *Backend) AppendLines(n int) error {
	if n <= 0 {
		return nil
	}
	s, err := b.Size()
	if err != nil {
		return err
	}
	_, y := b.grid.Cursor()
	y += n
	if y >= s.Rows {
		if err := b.grid.ScrollUp(y - s.Rows + 1); err != nil {
			return err
		}
		y = s.Rows - 1
	}
	b.grid.SetCursor(0, y)
	return nil
}

// Resize resizes the grid in cells.
func (b *Backend) Resize(cols, rows int) error {
	return b.grid.Resize(cols, rows)
}

// ResizePixels resizes the grid to fit a window of width x height pixels.
func (b *Backend) ResizePixels(width, height int) error {
	return b.grid.ResizePixels(width, height)
}
