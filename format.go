// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import "fmt"

// GlyphFormat tells the fragment stage how to interpret the atlas texels
// covered by a glyph.
//
// The GPU receives the format as a u32. Code building instances works with
// the named variants and converts with Wire only when the instance stream is
// serialized, so adding a variant means touching every switch on GlyphFormat.
type GlyphFormat uint8

const (
	// FormatAlphaMask is a monochrome glyph. The atlas red channel holds the
	// coverage and the instance color supplies the ink.
	FormatAlphaMask GlyphFormat = iota

	// FormatDirectColor is a pre-colored glyph (color bitmap, emoji). The
	// atlas texel is written verbatim and the instance color is ignored.
	FormatDirectColor
)

// Wire values of the glyph formats, as read by glyph.wgsl.
const (
	wireAlphaMask   uint32 = 0
	wireDirectColor uint32 = 1
)

// Wire returns the numeric form of f written into the instance buffer.
func (f GlyphFormat) Wire() uint32 {
	switch f {
	case FormatAlphaMask:
		return wireAlphaMask
	default:
		return wireDirectColor
	}
}

// Valid reports whether f is one of the declared formats.
func (f GlyphFormat) Valid() bool {
	return f == FormatAlphaMask || f == FormatDirectColor
}

// String returns the format name.
func (f GlyphFormat) String() string {
	switch f {
	case FormatAlphaMask:
		return "AlphaMask"
	case FormatDirectColor:
		return "DirectColor"
	default:
		return fmt.Sprintf("GlyphFormat(%d)", uint8(f))
	}
}

// FormatFromWire maps a wire value back to a GlyphFormat.
//
// Zero is an alpha mask. Every other value resolves to FormatDirectColor,
// which is exactly what the fragment shader does with it: the texel is used
// as is.
func FormatFromWire(w uint32) GlyphFormat {
	if w == wireAlphaMask {
		return FormatAlphaMask
	}
	return FormatDirectColor
}
