// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

// Sampler reads the glyph atlas at a normalized UV coordinate. Filtering and
// wrap mode belong to the implementation, as they belong to the GPU sampler
// object on the GPU path.
type Sampler interface {
	Sample(u, v float32) RGBA
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(u, v float32) RGBA

// Sample calls f(u, v).
func (f SamplerFunc) Sample(u, v float32) RGBA { return f(u, v) }

// ShadeGlyph runs the glyph fragment stage for an interpolated varying.
func ShadeGlyph(in GlyphVarying, atlas Sampler) RGBA {
	texel := atlas.Sample(in.UV.X, in.UV.Y)
	return ShadeGlyphTexel(in.Color, in.Format, texel)
}

// ShadeGlyphTexel combines an already sampled atlas texel with the glyph's
// color according to format.
//
// Alpha-mask glyphs take their RGB from color and their alpha from the
// texel's red channel. Anything else, including formats this package does
// not declare, outputs the texel unchanged.
func ShadeGlyphTexel(color RGBA, format GlyphFormat, texel RGBA) RGBA {
	if format == FormatAlphaMask {
		return RGBA{R: color.R, G: color.G, B: color.B, A: texel.R}
	}
	return texel
}

// ShadeCursor runs the cursor fragment stage. Every covered pixel gets the
// style's color.
func ShadeCursor(style CursorStyle) RGBA {
	return style.Color
}
