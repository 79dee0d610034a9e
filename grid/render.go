// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggterm/internal/logging"
)

// Present paints the damaged cells and submits the frame to p.
// Exactly one frame is submitted per call; without damage the frame is
// resubmitted unchanged with an empty damage list.
//
// Errors from p are returned unchanged.
func (g *Grid) Present(p Presenter) error {
	if g.closed {
		return ErrClosed
	}
	if p == nil {
		return ErrNilPresenter
	}
	if g.cols == 0 || g.rows == 0 {
		return ErrUnavailable
	}

	spans := g.damage.spans(g.cols, g.rows)
	var damage []image.Rectangle
	painted := 0
	for _, s := range spans {
		painted += g.paintSpan(s)
		damage = append(damage, s.rect(g.cellW, g.cellH))
	}
	g.damage.clear()

	g.seq++
	g.stats.Frames++
	g.stats.CellsPainted += uint64(painted)

	logging.Logger().Debug("grid: present",
		"seq", g.seq, "rects", len(damage), "cells", painted)

	return p.Present(Frame{
		Pixmap: g.dc.ResizeTarget(),
		Damage: damage,
		Seq:    g.seq,
	})
}

// paintSpan rasterizes the cells of one damaged run and returns how many
// cells were painted.
func (g *Grid) paintSpan(s span) int {
	n := 0
	base := s.row * g.cols
	for x := s.x0; x < s.x1; x++ {
		sl := g.cells[base+x]
		if sl.width == 0 {
			// Painted together with its leading half.
			continue
		}
		g.paintCell(x, s.row, sl)
		n++
	}
	return n
}

func (g *Grid) paintCell(col, row int, s slot) {
	pm := g.dc.ResizeTarget()
	width := int(s.width)
	x, y := col*g.cellW, row*g.cellH
	w := width * g.cellW

	style := s.cell.Style
	fg, bg := g.palette.resolve(style)
	atCursor := g.cursor.covers(col, row, width)
	if atCursor && g.cursor.style == CursorBlock {
		fg, bg = bg, g.palette.Cursor
	}

	fillRect(pm, x, y, w, g.cellH, bg)

	if s.cell.Symbol != " " && style.Attrs&AttrHidden == 0 {
		g.dc.SetFont(g.fonts.face(style.Attrs))
		g.dc.SetColor(fg)
		g.dc.DrawString(s.cell.Symbol, float64(x), float64(y+g.baseline))
	}

	thick := max(g.cellH/14, 1)
	if style.Attrs&AttrUnderline != 0 {
		uy := min(y+g.baseline+thick, y+g.cellH-thick)
		fillRect(pm, x, uy, w, thick, fg)
	}
	if style.Attrs&AttrStrikethrough != 0 {
		fillRect(pm, x, y+g.cellH/2, w, thick, fg)
	}

	if atCursor {
		switch g.cursor.style {
		case CursorUnderline:
			fillRect(pm, x, y+g.cellH-2*thick, w, 2*thick, g.palette.Cursor)
		case CursorBar:
			fillRect(pm, x, y, 2*thick, g.cellH, g.palette.Cursor)
		}
	}
}

// fillRect writes an opaque rectangle directly into the pixmap.
func fillRect(pm *gg.Pixmap, x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, pm.Width()), min(y+h, pm.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}
	data := pm.Data()
	stride := pm.Width() * 4
	for py := y0; py < y1; py++ {
		row := data[py*stride+x0*4 : py*stride+x1*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}
