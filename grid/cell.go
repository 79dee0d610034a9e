// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Cell is the content of one grid position: a single grapheme cluster and
// its style. An empty Symbol is stored as a space.
//
// Cell values read back from the trailing half of a wide symbol have an
// empty Symbol.
type Cell struct {
	Symbol string
	Style  Style
}

// NewCell returns a Cell with the given symbol and style.
func NewCell(symbol string, style Style) Cell {
	return Cell{Symbol: symbol, Style: style}
}

// slot is the stored form of a cell.
// width is 1 or 2 for a leading cell and 0 for the trailing half of a
// wide symbol.
type slot struct {
	cell  Cell
	width uint8
}

func blankSlot(style Style) slot {
	return slot{cell: Cell{Symbol: " ", Style: style}, width: 1}
}

func trailingSlot(style Style) slot {
	return slot{cell: Cell{Style: style}, width: 0}
}

// normalizeSymbol reduces s to its first grapheme cluster in NFC form and
// returns it with its display width (1 or 2). Empty, control and
// invalid symbols become a space.
func normalizeSymbol(s string) (string, int) {
	if s == "" {
		return " ", 1
	}
	if !utf8.ValidString(s) {
		return " ", 1
	}
	s = norm.NFC.String(s)
	cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	r, _ := utf8.DecodeRuneInString(cluster)
	if unicode.IsControl(r) {
		return " ", 1
	}
	switch {
	case width <= 0:
		width = 1
	case width > 2:
		width = 2
	}
	return cluster, width
}
