// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package grid implements a terminal cell grid rendered with gg.
//
// A Grid holds cols x rows cells, each with one grapheme cluster and a
// Style. Writes mark cells as damaged; Present paints only the damaged
// cells into the grid's pixel frame and hands the frame to a Presenter:
//
//	g, _ := grid.New(grid.WithSize(80, 24))
//	defer g.Close()
//
//	g.SetCell(0, 0, grid.NewCell("$", grid.Style{Fg: grid.ColorGreen}))
//	g.Present(presenter)
//
// # Presenters
//
// CanvasPresenter uploads frames to the GPU through ggcanvas and a
// gpucontext.DeviceProvider owned by the host application.
// ImagePresenter keeps the last frame in memory for headless use and tests.
//
// # Thread Safety
//
// Grid is NOT safe for concurrent use. It is expected to be driven from the
// goroutine that owns the graphics context.
package grid
