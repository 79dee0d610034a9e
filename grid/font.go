// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
)

const (
	faceRegular = iota
	faceBold
	faceItalic
	faceBoldItalic
)

// fontSet holds one face per bold/italic combination.
type fontSet struct {
	sources []*text.FontSource
	faces   [4]text.Face
}

// loadFonts builds the face set. With nil data the Go Mono family is used;
// a custom font serves all four variants.
func loadFonts(size float64, data []byte) (*fontSet, error) {
	fs := &fontSet{}
	if data != nil {
		src, err := text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("grid: load font: %w", err)
		}
		fs.sources = append(fs.sources, src)
		face := src.Face(size)
		fs.faces = [4]text.Face{face, face, face, face}
		return fs, nil
	}

	for i, ttf := range [4][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF} {
		src, err := text.NewFontSource(ttf)
		if err != nil {
			fs.close()
			return nil, fmt.Errorf("grid: load Go Mono: %w", err)
		}
		fs.sources = append(fs.sources, src)
		fs.faces[i] = src.Face(size)
	}
	return fs, nil
}

func (fs *fontSet) face(a Attr) text.Face {
	i := faceRegular
	if a&AttrBold != 0 {
		i |= faceBold
	}
	if a&AttrItalic != 0 {
		i |= faceItalic
	}
	return fs.faces[i]
}

// metrics returns the cell width, cell height and baseline offset in pixels.
func (fs *fontSet) metrics() (cellW, cellH, baseline int) {
	face := fs.faces[faceRegular]
	m := face.Metrics()
	cellW = int(math.Ceil(face.Advance("M")))
	cellH = int(math.Ceil(m.LineHeight()))
	baseline = int(math.Ceil(m.Ascent))
	return max(cellW, 1), max(cellH, 1), min(max(baseline, 1), max(cellH, 1))
}

func (fs *fontSet) close() {
	for _, src := range fs.sources {
		_ = src.Close()
	}
	fs.sources = nil
}
