// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggterm/internal/logging"
)

// CanvasPresenter presents frames in a gogpu window through ggcanvas.
//
// The DeviceProvider and the texture drawers belong to the host
// application. target is called once per frame and must return the drawer
// for the frame being rendered (typically dc.AsTextureDrawer() inside
// gogpu's OnDraw), or nil when no frame can be drawn.
//
// CanvasPresenter is NOT safe for concurrent use.
type CanvasPresenter struct {
	provider gpucontext.DeviceProvider
	target   func() gpucontext.TextureDrawer
	canvas   *ggcanvas.Canvas
	closed   bool
}

// NewCanvasPresenter creates a presenter for the given GPU context.
//
// Returns ErrNilProvider or ErrNilTarget for nil arguments.
func NewCanvasPresenter(provider gpucontext.DeviceProvider, target func() gpucontext.TextureDrawer) (*CanvasPresenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	return &CanvasPresenter{provider: provider, target: target}, nil
}

// Err reports ErrContextLost once the presenter is closed.
func (p *CanvasPresenter) Err() error {
	if p.closed {
		return ErrContextLost
	}
	return nil
}

// Present uploads the frame to the canvas texture and draws it at the
// window origin. The canvas is created on the first frame and resized
// with the grid.
func (p *CanvasPresenter) Present(f Frame) error {
	if p.closed {
		return ErrContextLost
	}
	if f.Pixmap == nil {
		return ErrNoFrame
	}
	dc := p.target()
	if dc == nil {
		return ErrContextLost
	}

	w, h := f.Pixmap.Width(), f.Pixmap.Height()
	if p.canvas == nil {
		c, err := ggcanvas.New(p.provider, w, h)
		if err != nil {
			return fmt.Errorf("grid: create canvas: %w", err)
		}
		p.canvas = c
		logging.Logger().Debug("grid: canvas created",
			"width", w, "height", h, "format", p.provider.SurfaceFormat())
	} else if err := p.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("grid: resize canvas: %w", err)
	}

	cc := p.canvas.Context()
	if cc == nil {
		return ErrContextLost
	}
	copy(cc.ResizeTarget().Data(), f.Pixmap.Data())
	p.canvas.MarkDirty()

	if err := p.canvas.RenderTo(dc); err != nil {
		logging.Logger().Warn("grid: canvas render failed", "seq", f.Seq, "err", err)
		return fmt.Errorf("grid: render canvas: %w", err)
	}
	return nil
}

// Close releases the canvas texture. The provider is not touched.
// Close is idempotent.
func (p *CanvasPresenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	var err error
	if p.canvas != nil {
		err = p.canvas.Close()
		p.canvas = nil
	}
	p.provider = nil
	return err
}
