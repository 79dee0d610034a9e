// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// CursorStyle selects how the cursor is drawn.
type CursorStyle uint8

const (
	// CursorBlock draws the cursor cell with foreground and background swapped.
	CursorBlock CursorStyle = iota
	// CursorUnderline draws a bar under the cursor cell.
	CursorUnderline
	// CursorBar draws a vertical bar at the left edge of the cursor cell.
	CursorBar
)

// String returns the config name of the style.
func (s CursorStyle) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	default:
		return fmt.Sprintf("CursorStyle(%d)", s)
	}
}

// ParseCursorStyle parses "block", "underline" or "bar".
func ParseCursorStyle(s string) (CursorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return CursorBlock, nil
	case "underline":
		return CursorUnderline, nil
	case "bar", "beam":
		return CursorBar, nil
	}
	return CursorBlock, fmt.Errorf("unknown cursor style %q", s)
}

type cursor struct {
	x, y    int
	visible bool
	style   CursorStyle
}

// covers reports whether the cursor lies within width cells starting at (x, y).
func (c cursor) covers(x, y, width int) bool {
	return c.visible && c.y == y && c.x >= x && c.x < x+width
}

// SetCursor moves the cursor, clamping it to the grid.
func (g *Grid) SetCursor(x, y int) {
	if g.closed {
		return
	}
	x, y = g.clamp(x, y)
	if x == g.cursor.x && y == g.cursor.y {
		return
	}
	if g.cursor.visible {
		g.markCursor()
	}
	g.cursor.x, g.cursor.y = x, y
	if g.cursor.visible {
		g.markCursor()
	}
}

// Cursor returns the cursor position.
func (g *Grid) Cursor() (x, y int) {
	return g.cursor.x, g.cursor.y
}

// SetCursorVisible shows or hides the cursor.
func (g *Grid) SetCursorVisible(visible bool) {
	if g.closed || g.cursor.visible == visible {
		return
	}
	g.cursor.visible = visible
	g.markCursor()
}

// CursorVisible reports whether the cursor is drawn.
func (g *Grid) CursorVisible() bool {
	return g.cursor.visible
}

// SetCursorStyle changes how the cursor is drawn.
func (g *Grid) SetCursorStyle(s CursorStyle) {
	if g.closed || g.cursor.style == s {
		return
	}
	g.cursor.style = s
	if g.cursor.visible {
		g.markCursor()
	}
}

// CursorStyle returns the cursor style.
func (g *Grid) CursorStyle() CursorStyle {
	return g.cursor.style
}

func (g *Grid) markCursor() {
	if g.cols == 0 || g.rows == 0 {
		return
	}
	g.markCell(g.cursor.y*g.cols + g.cursor.x)
}

func (g *Grid) clamp(x, y int) (int, int) {
	x = min(max(x, 0), max(g.cols-1, 0))
	y = min(max(y, 0), max(g.rows-1, 0))
	return x, y
}
