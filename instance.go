// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import "fmt"

// GlyphInstance is one glyph to draw this frame. The layout engine builds a
// fresh slice of these every frame; an instance has no identity beyond its
// position in that slice.
type GlyphInstance struct {
	// Position holds two opposite corners of the destination quad in clip
	// space.
	Position Rect

	// UV locates the glyph bitmap in the atlas as origin plus extent.
	UV UVRect

	// Color tints alpha-mask glyphs. Direct-color glyphs ignore it.
	Color RGBA

	// Format selects how the atlas texel is turned into the output color.
	Format GlyphFormat
}

// CursorInstance is one cursor box. Terminals usually draw zero or one per
// frame; nothing here limits it to one.
type CursorInstance struct {
	// Position is the anchor corner of the box.
	Position Vec2

	// Size is the box extent. The box spans from Position to
	// (Position.X+Size.X, Position.Y-Size.Y): positive heights extend
	// towards negative y.
	Size Vec2
}

// Rect returns the rectangle covered by the cursor.
func (c CursorInstance) Rect() Rect {
	return Rect{
		X0: c.Position.X,
		Y0: c.Position.Y,
		X1: c.Position.X + c.Size.X,
		Y1: c.Position.Y - c.Size.Y,
	}
}

// CursorStyle configures how cursors are shaded.
type CursorStyle struct {
	// Color is written for every pixel covered by a cursor quad.
	Color RGBA
}

// DefaultCursorStyle returns the cursor style used when the host does not
// configure one: opaque white.
func DefaultCursorStyle() CursorStyle {
	return CursorStyle{Color: White}
}

// Validate checks that every instance uses a declared glyph format.
//
// Rendering never requires this: an unknown format is drawn as direct color.
// Hosts that would rather fail before upload than draw a wrong glyph call
// Validate on the frame's instances.
func Validate(instances []GlyphInstance) error {
	for i := range instances {
		if !instances[i].Format.Valid() {
			return fmt.Errorf("%w: instance %d has %v", ErrUnknownFormat, i, instances[i].Format)
		}
	}
	return nil
}
