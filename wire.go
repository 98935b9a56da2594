// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import (
	"encoding/binary"
	"fmt"
	"math"
)

// GlyphInstanceStride is the byte stride of one glyph instance in the
// instance buffer. Layout, matching GlyphInput in glyph.wgsl:
//
//	position (vec4<f32>) = 16 bytes (location 0)
//	uv       (vec4<f32>) = 16 bytes (location 1)
//	color    (vec4<f32>) = 16 bytes (location 2)
//	format   (u32)       =  4 bytes (location 3)
//
// Total = 52 bytes per instance.
const GlyphInstanceStride = 52

// CursorInstanceStride is the byte stride of one cursor instance. Layout,
// matching CursorInput in cursor.wgsl:
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	size     (vec2<f32>) = 8 bytes (location 1)
//
// Total = 16 bytes per instance.
const CursorInstanceStride = 16

// Attribute byte offsets inside a glyph instance.
const (
	GlyphOffsetPosition = 0
	GlyphOffsetUV       = 16
	GlyphOffsetColor    = 32
	GlyphOffsetFormat   = 48
)

// Attribute byte offsets inside a cursor instance.
const (
	CursorOffsetPosition = 0
	CursorOffsetSize     = 8
)

// AppendGlyphInstances serializes instances little-endian onto dst and
// returns the extended slice. The format is converted to its wire value here
// and nowhere else.
func AppendGlyphInstances(dst []byte, instances []GlyphInstance) []byte {
	off := len(dst)
	dst = grow(dst, len(instances)*GlyphInstanceStride)
	for i := range instances {
		writeGlyphInstance(dst[off:off+GlyphInstanceStride], &instances[i])
		off += GlyphInstanceStride
	}
	return dst
}

// EncodeGlyphInstances serializes instances into a new buffer.
func EncodeGlyphInstances(instances []GlyphInstance) []byte {
	if len(instances) == 0 {
		return nil
	}
	return AppendGlyphInstances(make([]byte, 0, len(instances)*GlyphInstanceStride), instances)
}

// AppendCursorInstances serializes instances little-endian onto dst.
func AppendCursorInstances(dst []byte, instances []CursorInstance) []byte {
	off := len(dst)
	dst = grow(dst, len(instances)*CursorInstanceStride)
	for _, c := range instances {
		b := dst[off : off+CursorInstanceStride]
		putF32(b[0:], c.Position.X)
		putF32(b[4:], c.Position.Y)
		putF32(b[8:], c.Size.X)
		putF32(b[12:], c.Size.Y)
		off += CursorInstanceStride
	}
	return dst
}

// EncodeCursorInstances serializes instances into a new buffer.
func EncodeCursorInstances(instances []CursorInstance) []byte {
	if len(instances) == 0 {
		return nil
	}
	return AppendCursorInstances(make([]byte, 0, len(instances)*CursorInstanceStride), instances)
}

// DecodeGlyphInstances parses an instance buffer back into instances. Wire
// formats are mapped with FormatFromWire, so unknown values come back as
// FormatDirectColor.
func DecodeGlyphInstances(data []byte) ([]GlyphInstance, error) {
	if len(data)%GlyphInstanceStride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrShortBuffer, len(data), GlyphInstanceStride)
	}
	out := make([]GlyphInstance, len(data)/GlyphInstanceStride)
	for i := range out {
		b := data[i*GlyphInstanceStride:]
		out[i] = GlyphInstance{
			Position: Rect{X0: getF32(b[0:]), Y0: getF32(b[4:]), X1: getF32(b[8:]), Y1: getF32(b[12:])},
			UV:       UVRect{U: getF32(b[16:]), V: getF32(b[20:]), DU: getF32(b[24:]), DV: getF32(b[28:])},
			Color:    RGBA{R: getF32(b[32:]), G: getF32(b[36:]), B: getF32(b[40:]), A: getF32(b[44:])},
			Format:   FormatFromWire(binary.LittleEndian.Uint32(b[GlyphOffsetFormat:])),
		}
	}
	return out, nil
}

// DecodeCursorInstances parses a cursor instance buffer.
func DecodeCursorInstances(data []byte) ([]CursorInstance, error) {
	if len(data)%CursorInstanceStride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrShortBuffer, len(data), CursorInstanceStride)
	}
	out := make([]CursorInstance, len(data)/CursorInstanceStride)
	for i := range out {
		b := data[i*CursorInstanceStride:]
		out[i] = CursorInstance{
			Position: Vec2{X: getF32(b[0:]), Y: getF32(b[4:])},
			Size:     Vec2{X: getF32(b[8:]), Y: getF32(b[12:])},
		}
	}
	return out, nil
}

// EncodeColor serializes a color as vec4<f32>, the layout of the cursor
// color uniform.
func EncodeColor(c RGBA) []byte {
	buf := make([]byte, 16)
	putF32(buf[0:], c.R)
	putF32(buf[4:], c.G)
	putF32(buf[8:], c.B)
	putF32(buf[12:], c.A)
	return buf
}

func writeGlyphInstance(b []byte, g *GlyphInstance) {
	putF32(b[0:], g.Position.X0)
	putF32(b[4:], g.Position.Y0)
	putF32(b[8:], g.Position.X1)
	putF32(b[12:], g.Position.Y1)
	putF32(b[16:], g.UV.U)
	putF32(b[20:], g.UV.V)
	putF32(b[24:], g.UV.DU)
	putF32(b[28:], g.UV.DV)
	putF32(b[32:], g.Color.R)
	putF32(b[36:], g.Color.G)
	putF32(b[40:], g.Color.B)
	putF32(b[44:], g.Color.A)
	binary.LittleEndian.PutUint32(b[GlyphOffsetFormat:], g.Format.Wire())
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) < n {
		nb := make([]byte, len(b), len(b)+n)
		copy(nb, b)
		b = nb
	}
	return b[:len(b)+n]
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
