package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor converts a "#RRGGBB" or "#RGB" hex string into a color.
// An empty string yields opaque black.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return color.Black, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// MustColor is ParseColor for trusted inputs such as package defaults.
// It panics on malformed values.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales a color's opacity by alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	alpha = Clamp(alpha, 0, 1)

	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 0xff),
	}
}
