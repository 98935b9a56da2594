// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a straight-alpha color with components in [0, 1], laid out the
// way the instance buffer carries it.
type RGBA struct {
	R, G, B, A float32
}

// Color returns c as an 8-bit color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	p := c.Premultiply()
	return to16(p.R), to16(p.G), to16(p.B), to16(p.A)
}

// Premultiply scales the color channels by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(n.R, n.G, n.B).WithAlpha8(n.A)
}

// RGB returns an opaque color.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGB8 returns an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// WithAlpha8 returns c with an 8-bit alpha.
func (c RGBA) WithAlpha8(a uint8) RGBA {
	c.A = float32(a) / 255
	return c
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading
// '#' is optional.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		h = b.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return RGBA{}, fmt.Errorf("glyphquad: hex color %q: bad length", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("glyphquad: hex color %q: %w", s, err)
	}
	return RGB8(uint8(v>>24), uint8(v>>16), uint8(v>>8)).WithAlpha8(uint8(v)), nil
}

// Hex is ParseHex for literals. Malformed input yields opaque black.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

func to8(x float32) uint8 {
	return uint8(clampUnit(x)*255 + 0.5)
}

func to16(x float32) uint32 {
	return uint32(clampUnit(x)*65535 + 0.5)
}

func clampUnit(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Named colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
