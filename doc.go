// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggterm is a terminal-UI backend that renders on the GPU.
//
// # Overview
//
// A terminal-UI framework draws through a Backend: it writes styled cells,
// moves the cursor, clears regions and flushes. The Backend forwards each
// call to a grid.Grid, which rasterizes the cells with gg, and presents the
// finished frames through a grid.Presenter that wraps the host's graphics
// context.
//
// # Quick Start
//
//	g, err := grid.New(grid.WithSize(80, 24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	p, err := grid.NewCanvasPresenter(provider, drawer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	b, err := ggterm.New(g, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b.SetCell(ggterm.Position{X: 0, Y: 0}, grid.NewCell("$", grid.Style{}))
//	b.Flush()
//
// For headless rendering use grid.ImagePresenter instead of the canvas
// presenter.
//
// # Ownership
//
// The grid and the presenter belong to the caller. Backend holds no
// resources of its own and needs no teardown.
//
// # Thread Safety
//
// Backend is NOT safe for concurrent use. Drive it from the goroutine that
// owns the graphics context. SetLogger and Logger are safe for concurrent
// use.
package ggterm
