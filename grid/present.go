// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"image"

	"github.com/gogpu/gg"
)

// Frame is one rendered grid image.
//
// Pixmap is the grid's live pixel buffer: presenters must copy what they
// keep before Present returns.
type Frame struct {
	Pixmap *gg.Pixmap

	// Damage lists the pixel rectangles changed since the previous frame.
	Damage []image.Rectangle

	// Seq increases by one per frame.
	Seq uint64
}

// Presenter submits frames to a graphics context.
//
// A presenter may also implement
//
//	Err() error
//
// to report that it can no longer present (for example after its context
// was lost).
type Presenter interface {
	Present(f Frame) error
}

// ImagePresenter keeps the most recent frame in memory.
// The zero value is ready to use.
type ImagePresenter struct {
	pm       *gg.Pixmap
	presents int
	damage   []image.Rectangle
	seq      uint64
}

// NewImagePresenter creates an empty ImagePresenter.
func NewImagePresenter() *ImagePresenter {
	return &ImagePresenter{}
}

// Present copies the frame.
func (p *ImagePresenter) Present(f Frame) error {
	if f.Pixmap == nil {
		return ErrNoFrame
	}
	w, h := f.Pixmap.Width(), f.Pixmap.Height()
	if p.pm == nil || p.pm.Width() != w || p.pm.Height() != h {
		p.pm = gg.NewPixmap(w, h)
	}
	copy(p.pm.Data(), f.Pixmap.Data())
	p.damage = append(p.damage[:0], f.Damage...)
	p.seq = f.Seq
	p.presents++
	return nil
}

// Presents returns the number of frames received.
func (p *ImagePresenter) Presents() int {
	return p.presents
}

// LastDamage returns the damage rectangles of the last frame.
func (p *ImagePresenter) LastDamage() []image.Rectangle {
	return p.damage
}

// LastSeq returns the sequence number of the last frame.
func (p *ImagePresenter) LastSeq() uint64 {
	return p.seq
}

// Pixmap returns the last frame, or nil before the first one.
func (p *ImagePresenter) Pixmap() *gg.Pixmap {
	return p.pm
}

// Image returns a copy of the last frame, or nil before the first one.
func (p *ImagePresenter) Image() *image.RGBA {
	if p.pm == nil {
		return nil
	}
	return p.pm.ToImage()
}

// SavePNG writes the last frame to path.
func (p *ImagePresenter) SavePNG(path string) error {
	if p.pm == nil {
		return ErrNoFrame
	}
	return p.pm.SavePNG(path)
}
