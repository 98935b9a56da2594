// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

// VerticesPerQuad is the number of vertices drawn per instance: two
// triangles, no index buffer.
const VerticesPerQuad = 6

// glyphCornerMap maps the per-vertex index to a rectangle corner (see
// Rect.Corner). Triangles are (0,2,1) and (1,2,3); they share the 1-2
// diagonal. glyph.wgsl carries the same table.
var glyphCornerMap = [VerticesPerQuad]int{0, 2, 1, 1, 2, 3}

// cursorCorners holds the cursor quad vertices as multiples of the cursor
// size, relative to its anchor. cursor.wgsl carries the same table.
var cursorCorners = [VerticesPerQuad]Vec2{
	{X: 0, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// GlyphVarying is the output of the glyph vertex stage: what the rasterizer
// interpolates (UV) or passes flat (Color, Format) to the fragment stage.
type GlyphVarying struct {
	Position Vec4
	UV       Vec2
	Color    RGBA
	Format   GlyphFormat
}

// GlyphCorner returns the corner index used for the given vertex.
func GlyphCorner(vertexIndex int) int {
	return glyphCornerMap[wrapVertex(vertexIndex)]
}

// GlyphVertex runs the glyph vertex stage for one vertex of inst.
//
// Position and UV are picked from the same corner so they always move
// together. Vertex indices outside [0, 6) wrap around.
func GlyphVertex(inst GlyphInstance, vertexIndex int) GlyphVarying {
	corner := GlyphCorner(vertexIndex)
	p := inst.Position.Corner(corner)
	uv := inst.UV.Corners().Corner(corner)
	return GlyphVarying{
		Position: Vec4{X: p.X, Y: p.Y, Z: 0, W: 1},
		UV:       uv,
		Color:    inst.Color,
		Format:   inst.Format,
	}
}

// ExpandGlyph returns all six vertices of inst in draw order.
func ExpandGlyph(inst GlyphInstance) [VerticesPerQuad]GlyphVarying {
	var out [VerticesPerQuad]GlyphVarying
	for i := range out {
		out[i] = GlyphVertex(inst, i)
	}
	return out
}

// CursorVertex runs the cursor vertex stage for one vertex of inst.
func CursorVertex(inst CursorInstance, vertexIndex int) Vec4 {
	c := cursorCorners[wrapVertex(vertexIndex)]
	return Vec4{
		X: inst.Position.X + c.X*inst.Size.X,
		Y: inst.Position.Y + c.Y*inst.Size.Y,
		Z: 0,
		W: 1,
	}
}

// ExpandCursor returns all six vertices of inst in draw order.
func ExpandCursor(inst CursorInstance) [VerticesPerQuad]Vec4 {
	var out [VerticesPerQuad]Vec4
	for i := range out {
		out[i] = CursorVertex(inst, i)
	}
	return out
}

// VertexCount returns the number of vertices a draw of n instances emits.
func VertexCount(n int) int {
	return n * VerticesPerQuad
}

func wrapVertex(i int) int {
	i %= VerticesPerQuad
	if i < 0 {
		i += VerticesPerQuad
	}
	return i
}
