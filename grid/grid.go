// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggterm/internal/logging"
)

// Stats counts rendering work since the grid was created.
type Stats struct {
	// Frames is the number of frames handed to a presenter.
	Frames uint64
	// CellsPainted is the number of cells rasterized. A wide symbol counts once.
	CellsPainted uint64
}

// Grid is a terminal cell grid backed by a gg pixel frame.
type Grid struct {
	cols, rows int
	cells      []slot
	damage     damageSet
	cursor     cursor

	fonts    *fontSet
	palette  Palette
	cellW    int
	cellH    int
	baseline int
	dc       *gg.Context

	seq    uint64
	stats  Stats
	closed bool
}

// New creates a grid. The default is 80x24 cells of 14pt Go Mono.
func New(opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.cols < 0 || o.rows < 0 {
		return nil, fmt.Errorf("%w: cols=%d, rows=%d", ErrInvalidSize, o.cols, o.rows)
	}
	if o.fontSize <= 0 {
		return nil, fmt.Errorf("grid: invalid font size %v", o.fontSize)
	}

	data := o.fontData
	if o.fontPath != "" {
		b, err := os.ReadFile(o.fontPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, fmt.Errorf("grid: read font: %w", err)
		}
		data = b
	}
	fonts, err := loadFonts(o.fontSize, data)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		fonts:   fonts,
		palette: o.palette,
		cursor:  cursor{visible: o.cursorVisible, style: o.cursorStyle},
	}
	g.cellW, g.cellH, g.baseline = fonts.metrics()
	g.dc = gg.NewContext(max(o.cols, 1)*g.cellW, max(o.rows, 1)*g.cellH)
	g.alloc(o.cols, o.rows)

	logging.Logger().Info("grid: created",
		"cols", g.cols, "rows", g.rows,
		"cellWidth", g.cellW, "cellHeight", g.cellH)
	return g, nil
}

// alloc replaces the cell storage with blank cells and damages everything.
func (g *Grid) alloc(cols, rows int) {
	g.cols, g.rows = cols, rows
	g.cells = make([]slot, cols*rows)
	for i := range g.cells {
		g.cells[i] = blankSlot(Style{})
	}
	g.damage.reset(len(g.cells))
	g.damage.markAll()
}

// Size returns the grid size in cells, or ErrUnavailable when the grid has
// no drawable area or is closed.
func (g *Grid) Size() (cols, rows int, err error) {
	if g.closed || g.cols == 0 || g.rows == 0 {
		return 0, 0, ErrUnavailable
	}
	return g.cols, g.rows, nil
}

// CellSize returns the size of one cell in pixels.
func (g *Grid) CellSize() (width, height int) {
	return g.cellW, g.cellH
}

// PixelSize returns the size of the grid in pixels.
func (g *Grid) PixelSize() (width, height int) {
	return g.cols * g.cellW, g.rows * g.cellH
}

// Palette returns the colour palette.
func (g *Grid) Palette() Palette {
	return g.palette
}

// SetPalette replaces the palette and damages every cell.
func (g *Grid) SetPalette(p Palette) {
	if g.closed {
		return
	}
	g.palette = p
	g.damage.markAll()
}

// Stats returns the rendering counters.
func (g *Grid) Stats() Stats {
	return g.stats
}

// Damaged returns the number of cells waiting to be painted.
func (g *Grid) Damaged() int {
	return g.damage.count
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

// SetCell writes c at (x, y). Writing the cell already stored there is not
// damage. A wide symbol also claims the cell to its right; in the last
// column it is replaced by a space.
func (g *Grid) SetCell(x, y int, c Cell) error {
	if g.closed {
		return ErrClosed
	}
	if !g.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Cols: g.cols, Rows: g.rows}
	}

	sym, width := normalizeSymbol(c.Symbol)
	if width == 2 && x == g.cols-1 {
		sym, width = " ", 1
	}
	next := slot{cell: Cell{Symbol: sym, Style: c.Style}, width: uint8(width)}

	i := y*g.cols + x
	if g.cells[i] == next {
		return nil
	}
	g.breakWide(i)
	if width == 2 {
		g.breakWide(i + 1)
		g.cells[i+1] = trailingSlot(c.Style)
	}
	g.cells[i] = next
	g.markCell(i)
	return nil
}

// Cell returns the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if g.closed || !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.cols+x].cell, true
}

// breakWide blanks the other half of a wide symbol overlapping index i.
func (g *Grid) breakWide(i int) {
	s := g.cells[i]
	switch {
	case s.width == 0 && i%g.cols > 0:
		g.cells[i-1] = blankSlot(g.cells[i-1].cell.Style)
		g.damage.mark(i - 1)
	case s.width == 2 && (i+1)%g.cols != 0:
		g.cells[i+1] = blankSlot(s.cell.Style)
		g.damage.mark(i + 1)
	}
}

// markCell damages index i together with the other half of a wide symbol.
func (g *Grid) markCell(i int) {
	g.damage.mark(i)
	switch s := g.cells[i]; {
	case s.width == 0 && i%g.cols > 0:
		g.damage.mark(i - 1)
	case s.width == 2 && (i+1)%g.cols != 0:
		g.damage.mark(i + 1)
	}
}

// Clear resets every cell to a blank with the default style.
func (g *Grid) Clear() error {
	if g.closed {
		return ErrClosed
	}
	for i := range g.cells {
		g.cells[i] = blankSlot(Style{})
	}
	g.damage.markAll()
	return nil
}

// ClearRange blanks the row-major cell indices [from, to), clamped to the grid.
func (g *Grid) ClearRange(from, to int) error {
	if g.closed {
		return ErrClosed
	}
	from = max(from, 0)
	to = min(to, len(g.cells))
	if from >= to {
		return nil
	}
	g.breakWide(from)
	g.breakWide(to - 1)
	blank := blankSlot(Style{})
	for i := from; i < to; i++ {
		if g.cells[i] != blank {
			g.cells[i] = blank
			g.damage.mark(i)
		}
	}
	return nil
}

// Resize changes the grid size in cells, keeping the overlapping top-left
// content. A zero dimension leaves the grid unavailable until the next
// resize to a drawable size.
func (g *Grid) Resize(cols, rows int) error {
	if g.closed {
		return ErrClosed
	}
	if cols < 0 || rows < 0 {
		return fmt.Errorf("%w: cols=%d, rows=%d", ErrInvalidSize, cols, rows)
	}
	if cols == g.cols && rows == g.rows {
		return nil
	}
	if cols > 0 && rows > 0 {
		if err := g.dc.Resize(cols*g.cellW, rows*g.cellH); err != nil {
			return fmt.Errorf("grid: resize frame: %w", err)
		}
	}

	old, oldCols, oldRows := g.cells, g.cols, g.rows
	g.alloc(cols, rows)
	for y := 0; y < min(rows, oldRows); y++ {
		for x := 0; x < min(cols, oldCols); x++ {
			s := old[y*oldCols+x]
			if s.width == 2 && x == cols-1 {
				s = blankSlot(s.cell.Style)
			}
			g.cells[y*cols+x] = s
		}
	}
	g.cursor.x, g.cursor.y = g.clamp(g.cursor.x, g.cursor.y)

	logging.Logger().Debug("grid: resized", "cols", cols, "rows", rows)
	return nil
}

// ResizePixels resizes the grid to the number of whole cells that fit in
// width x height pixels.
func (g *Grid) ResizePixels(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	return g.Resize(width/g.cellW, height/g.cellH)
}

// ScrollUp moves content up by n rows and blanks the rows uncovered at
// the bottom.
func (g *Grid) ScrollUp(n int) error {
	if g.closed {
		return ErrClosed
	}
	if n <= 0 || len(g.cells) == 0 {
		return nil
	}
	if n >= g.rows {
		return g.Clear()
	}
	shift := n * g.cols
	copy(g.cells, g.cells[shift:])
	for i := len(g.cells) - shift; i < len(g.cells); i++ {
		g.cells[i] = blankSlot(Style{})
	}
	g.damage.markAll()
	return nil
}

// Close releases the fonts and the pixel frame. Close is idempotent.
func (g *Grid) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.fonts.close()
	err := g.dc.Close()
	g.dc = nil
	g.cells = nil
	return err
}
