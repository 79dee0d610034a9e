// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

// Option configures a Backend during creation.
//
// Example:
//
//	b, err := ggterm.New(g, p, ggterm.WithStrictBounds(true))
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictBounds makes cell writes outside the grid return an error
// matching ErrOutOfBounds. By default they are ignored, as on a real
// terminal.
func WithStrictBounds(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
