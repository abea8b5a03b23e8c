package core

import "errors"

var (
	ErrEmptySeries       = errors.New("series has no values")
	ErrNoSeries          = errors.New("at least one series is required")
	ErrLengthMismatch    = errors.New("x and y must have the same length")
	ErrModeConflict      = errors.New("grouped and stacked modes are mutually exclusive")
	ErrDimensionMismatch = errors.New("coordinate and grid dimensions do not match")
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrUnknownOperation  = errors.New("unknown aggregate operation")
	ErrUnknownColormap   = errors.New("unknown colormap")
	ErrNotFound          = errors.New("not found")
)
