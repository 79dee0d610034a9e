// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrUnavailable is returned when the grid has no valid size, either
	// because it was resized below one cell or because it is closed.
	ErrUnavailable = errors.New("grid: size unavailable")

	// ErrOutOfBounds is matched by *OutOfBoundsError.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrClosed is returned when operations are attempted on a closed grid.
	ErrClosed = errors.New("grid: grid is closed")

	// ErrInvalidSize is returned for negative dimensions.
	ErrInvalidSize = errors.New("grid: invalid size")

	// ErrContextLost is returned by presenters whose graphics context is
	// gone or not currently drawable.
	ErrContextLost = errors.New("grid: graphics context lost")

	// ErrNilPresenter is returned when Present is called with a nil presenter.
	ErrNilPresenter = errors.New("grid: nil presenter")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("grid: nil DeviceProvider")

	// ErrNilTarget is returned when a nil texture drawer source is passed.
	ErrNilTarget = errors.New("grid: nil texture drawer source")

	// ErrNoFrame is returned by ImagePresenter before the first frame arrives.
	ErrNoFrame = errors.New("grid: no frame presented")
)

// OutOfBoundsError is returned when a cell position lies outside the grid.
type OutOfBoundsError struct {
	X, Y       int
	Cols, Rows int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: position (%d, %d) out of bounds for %dx%d grid", e.X, e.Y, e.Cols, e.Rows)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grid: invalid config %s=%q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("grid: invalid config %s=%q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
