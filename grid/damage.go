// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import "image"

// damageSet tracks which cells changed since the last present.
type damageSet struct {
	dirty []bool
	count int
}

func (d *damageSet) reset(n int) {
	if cap(d.dirty) < n {
		d.dirty = make([]bool, n)
	} else {
		d.dirty = d.dirty[:n]
		clear(d.dirty)
	}
	d.count = 0
}

func (d *damageSet) mark(i int) {
	if i < 0 || i >= len(d.dirty) || d.dirty[i] {
		return
	}
	d.dirty[i] = true
	d.count++
}

func (d *damageSet) markAll() {
	for i := range d.dirty {
		d.dirty[i] = true
	}
	d.count = len(d.dirty)
}

func (d *damageSet) clear() {
	if d.count == 0 {
		return
	}
	clear(d.dirty)
	d.count = 0
}

func (d *damageSet) isDirty(i int) bool {
	return d.dirty[i]
}

// span is a run of damaged cells [x0, x1) on one row.
type span struct {
	row, x0, x1 int
}

// spans returns the damaged runs in row-major order.
func (d *damageSet) spans(cols, rows int) []span {
	if d.count == 0 {
		return nil
	}
	var out []span
	for row := 0; row < rows; row++ {
		base := row * cols
		start := -1
		for col := 0; col < cols; col++ {
			if d.dirty[base+col] {
				if start < 0 {
					start = col
				}
				continue
			}
			if start >= 0 {
				out = append(out, span{row: row, x0: start, x1: col})
				start = -1
			}
		}
		if start >= 0 {
			out = append(out, span{row: row, x0: start, x1: cols})
		}
	}
	return out
}

// rect converts a span to pixel coordinates.
func (s span) rect(cellW, cellH int) image.Rectangle {
	return image.Rect(s.x0*cellW, s.row*cellH, s.x1*cellW, (s.row+1)*cellH)
}
