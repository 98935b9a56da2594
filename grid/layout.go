// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
)

// DefaultReplacements are tried, in order, for runes the font cannot draw.
var DefaultReplacements = []rune{'\uFFFD', '?'}

// Layout turns a Grid into per-frame instances.
type Layout struct {
	Metrics Metrics
	Palette Palette

	// OriginX and OriginY offset the grid from the surface corner, in
	// pixels.
	OriginX, OriginY float32

	// Replacements stand in for runes missing from the font. Nil means
	// DefaultReplacements.
	Replacements []rune
}

// NewLayout returns a layout with the default palette and metrics taken
// from the atlas face.
func NewLayout(a *atlas.Atlas) Layout {
	return Layout{
		Metrics: MetricsFromFace(a.Metrics()),
		Palette: DefaultPalette(),
	}
}

// Build lays out every non-blank cell as a glyph instance and, when the
// cursor is visible, the cursor cell as a cursor instance. Glyphs missing
// from the atlas are added to it.
func (l *Layout) Build(g *Grid, a *atlas.Atlas, s glyphquad.Surface) ([]glyphquad.GlyphInstance, []glyphquad.CursorInstance, error) {
	return l.Append(nil, nil, g, a, s)
}

// Append is Build appending to existing slices, so callers can reuse them
// across frames.
func (l *Layout) Append(
	glyphs []glyphquad.GlyphInstance, cursors []glyphquad.CursorInstance,
	g *Grid, a *atlas.Atlas, s glyphquad.Surface,
) ([]glyphquad.GlyphInstance, []glyphquad.CursorInstance, error) {
	cols, rows := g.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := g.At(col, row)
			if cell.Blank() {
				continue
			}
			glyph, err := l.lookup(a, cell.Rune)
			if err != nil {
				return glyphs, cursors, err
			}
			if glyph.Blank() {
				continue
			}

			cx, cy := l.cellOrigin(col, row)
			x := cx + float32(glyph.Bearing.X)
			y := cy + l.Metrics.Baseline + float32(glyph.Bearing.Y)
			glyphs = append(glyphs, glyphquad.GlyphInstance{
				Position: s.RectToNDC(x, y, float32(glyph.Region.Width), float32(glyph.Region.Height)),
				UV:       a.UV(glyph),
				Color:    l.Palette.Resolve(cell.Fg),
				Format:   glyph.Format,
			})
		}
	}

	if g.CursorVisible {
		col, row := g.Cursor()
		w := l.Metrics.CellWidth
		if RuneWidth(g.At(col, row).Rune) == 2 {
			w *= 2
		}
		x, y := l.cellOrigin(col, row)
		cursors = append(cursors, s.CursorFromPixels(x, y, w, l.Metrics.CellHeight))
	}
	return glyphs, cursors, nil
}

// cellOrigin returns the whole-pixel top-left corner of a cell.
func (l *Layout) cellOrigin(col, row int) (float32, float32) {
	x, y := l.Metrics.CellOrigin(col, row)
	return round(l.OriginX + x), round(l.OriginY + y)
}

func (l *Layout) lookup(a *atlas.Atlas, r rune) (atlas.Glyph, error) {
	glyph, err := a.AddRune(r)
	if !errors.Is(err, atlas.ErrGlyphMissing) {
		return glyph, err
	}
	repl := l.Replacements
	if repl == nil {
		repl = DefaultReplacements
	}
	for _, rr := range repl {
		glyph, rerr := a.AddRune(rr)
		if rerr == nil {
			return glyph, nil
		}
		if !errors.Is(rerr, atlas.ErrGlyphMissing) {
			return atlas.Glyph{}, fmt.Errorf("grid: replacing %q: %w", r, rerr)
		}
	}
	return atlas.Glyph{}, fmt.Errorf("grid: %w", err)
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
