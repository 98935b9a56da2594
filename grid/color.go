// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import (
	"fmt"

	"github.com/gogpu/glyphquad"
)

// Color is a cell foreground color: one of the 16 ANSI palette entries or a
// direct 24-bit RGB value.
type Color uint32

// ANSI palette indices.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

const rgbFlag Color = 1 << 24

// RGB returns a direct color that bypasses the palette.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c is a direct color.
func (c Color) IsRGB() bool { return c&rgbFlag != 0 }

func (c Color) String() string {
	if c.IsRGB() {
		return fmt.Sprintf("RGB(%d,%d,%d)", uint8(c>>16), uint8(c>>8), uint8(c))
	}
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint32(c))
}

var colorNames = [...]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
	"BrightBlack", "BrightRed", "BrightGreen", "BrightYellow",
	"BrightBlue", "BrightMagenta", "BrightCyan", "BrightWhite",
}

// Palette maps the 16 ANSI colors to RGBA.
type Palette [16]glyphquad.RGBA

// DefaultPalette returns the saturated palette used by the terminal: pure
// primaries for the normal colors and lifted ones for the bright colors.
func DefaultPalette() Palette {
	return Palette{
		glyphquad.RGB8(0, 0, 0),
		glyphquad.RGB8(255, 0, 0),
		glyphquad.RGB8(0, 255, 0),
		glyphquad.RGB8(255, 255, 0),
		glyphquad.RGB8(0, 0, 255),
		glyphquad.RGB8(255, 0, 255),
		glyphquad.RGB8(0, 255, 255),
		glyphquad.RGB8(255, 255, 255),
		glyphquad.RGB8(100, 100, 100),
		glyphquad.RGB8(255, 100, 100),
		glyphquad.RGB8(100, 255, 100),
		glyphquad.RGB8(255, 255, 100),
		glyphquad.RGB8(100, 100, 255),
		glyphquad.RGB8(255, 100, 255),
		glyphquad.RGB8(100, 255, 255),
		glyphquad.RGB8(255, 255, 255),
	}
}

// Resolve returns the RGBA value of c. Indices past the palette resolve to
// the last entry.
func (p *Palette) Resolve(c Color) glyphquad.RGBA {
	if c.IsRGB() {
		return glyphquad.RGB8(uint8(c>>16), uint8(c>>8), uint8(c))
	}
	if int(c) >= len(p) {
		return p[len(p)-1]
	}
	return p[c]
}
