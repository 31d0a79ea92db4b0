package domain

import "errors"

var (
	// ErrNegativeRadius is returned at the observer boundary for a radius below zero.
	ErrNegativeRadius = errors.New("vision radius must not be negative")
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrUnknownGlyph   = errors.New("unknown map glyph")
	ErrInvalidMap     = errors.New("invalid map")
)
