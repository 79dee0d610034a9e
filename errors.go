// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

import (
	"errors"

	"github.com/gogpu/ggterm/grid"
)

// Construction errors.
var (
	// ErrNilGrid is returned by New when no grid is given.
	ErrNilGrid = errors.New("ggterm: nil grid")

	// ErrNilContext is returned by New when no graphics context is given.
	ErrNilContext = errors.New("ggterm: nil graphics context")

	// ErrUnknownClearType is returned by ClearRegion for an undefined ClearType.
	ErrUnknownClearType = errors.New("ggterm: unknown clear type")
)

// Errors passed through from the grid and its presenters.
var (
	// ErrUnavailable is returned when the grid has no drawable size.
	ErrUnavailable = grid.ErrUnavailable

	// ErrOutOfBounds is matched by strict-mode writes outside the grid.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrContextLost is returned by Flush when the graphics context is gone.
	ErrContextLost = grid.ErrContextLost
)
