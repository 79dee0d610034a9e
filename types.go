// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

import "fmt"

// Position is a cell position. (0, 0) is the top-left cell.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a grid size in cells.
type Size struct {
	Cols, Rows int
}

// WindowSize is the grid size in cells and in pixels.
type WindowSize struct {
	Cells         Size
	Width, Height int
}

// ClearType selects the cells erased by ClearRegion.
type ClearType int

const (
	// ClearAll erases the whole grid.
	ClearAll ClearType = iota
	// ClearAfterCursor erases from the cursor to the end of the grid.
	ClearAfterCursor
	// ClearBeforeCursor erases from the start of the grid up to and
	// including the cursor.
	ClearBeforeCursor
	// ClearCurrentLine erases the cursor's row.
	ClearCurrentLine
	// ClearUntilNewLine erases from the cursor to the end of its row.
	ClearUntilNewLine
)

func (c ClearType) String() string {
	switch c {
	case ClearAll:
		return "All"
	case ClearAfterCursor:
		return "AfterCursor"
	case ClearBeforeCursor:
		return "BeforeCursor"
	case ClearCurrentLine:
		return "CurrentLine"
	case ClearUntilNewLine:
		return "UntilNewLine"
	default:
		return fmt.Sprintf("ClearType(%d)", int(c))
	}
}
