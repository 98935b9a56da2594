// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import (
	"errors"
	"testing"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
)

func newTestAtlas(t *testing.T) *atlas.Atlas {
	t.Helper()
	a, err := atlas.New(atlas.Config{Size: 256, Padding: 1})
	if err != nil {
		t.Fatalf("atlas.New() error = %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func testLayout() Layout {
	return Layout{
		Metrics: Metrics{CellWidth: 10, CellHeight: 20, Baseline: 16},
		Palette: DefaultPalette(),
	}
}

func TestLayoutBuildGlyphs(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	s := glyphquad.Surface{Width: 200, Height: 100}

	g := New(4, 2)
	g.Write("a b", Red)
	g.MoveCursor(0, 1)
	g.Write("c", RGB(10, 20, 30))

	glyphs, _, err := l.Build(g, a, s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("Build() produced %d glyphs, want 3 (space skipped)", len(glyphs))
	}

	tests := []struct {
		r        rune
		col, row int
		color    glyphquad.RGBA
	}{
		{'a', 0, 0, glyphquad.RGB8(255, 0, 0)},
		{'b', 2, 0, glyphquad.RGB8(255, 0, 0)},
		{'c', 0, 1, glyphquad.RGB8(10, 20, 30)},
	}
	for i, tt := range tests {
		got := glyphs[i]
		entry, ok := a.Lookup(atlas.RuneKey(tt.r))
		if !ok {
			t.Fatalf("%q was not added to the atlas", tt.r)
		}
		if got.Format != glyphquad.FormatAlphaMask {
			t.Errorf("%q format = %v", tt.r, got.Format)
		}
		if got.Color != tt.color {
			t.Errorf("%q color = %v, want %v", tt.r, got.Color, tt.color)
		}
		if got.UV != a.UV(entry) {
			t.Errorf("%q uv = %v, want %v", tt.r, got.UV, a.UV(entry))
		}

		x0, y0 := s.NDCToPixel(glyphquad.Vec2{X: got.Position.X0, Y: got.Position.Y0})
		wantX := float32(tt.col*10 + entry.Bearing.X)
		wantY := float32(tt.row*20 + 16 + entry.Bearing.Y)
		if !near(x0, wantX) || !near(y0, wantY) {
			t.Errorf("%q top-left = (%v,%v), want (%v,%v)", tt.r, x0, y0, wantX, wantY)
		}
	}
}

func TestLayoutCursor(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	s := glyphquad.Surface{Width: 200, Height: 100}

	g := New(10, 3)
	g.Write("ab", White)

	_, cursors, err := l.Build(g, a, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(cursors) != 1 {
		t.Fatalf("got %d cursors, want 1", len(cursors))
	}
	x, y := s.NDCToPixel(cursors[0].Position)
	if !near(x, 20) || !near(y, 0) {
		t.Errorf("cursor at (%v,%v), want (20,0)", x, y)
	}
	if !near(cursors[0].Size.X, 0.1) || !near(cursors[0].Size.Y, 0.4) {
		t.Errorf("cursor size = %v, want (0.1,0.4)", cursors[0].Size)
	}

	g.CursorVisible = false
	if _, cursors, _ = l.Build(g, a, s); len(cursors) != 0 {
		t.Errorf("hidden cursor produced %d instances", len(cursors))
	}
}

func TestLayoutWideCursor(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	s := glyphquad.Surface{Width: 200, Height: 100}

	g := New(10, 3)
	g.Write("世", White)
	g.MoveCursor(0, 0)

	_, cursors, err := l.Build(g, a, s)
	if err != nil {
		t.Fatal(err)
	}
	if !near(cursors[0].Size.X, 0.2) {
		t.Errorf("wide cursor width = %v, want two cells (0.2)", cursors[0].Size.X)
	}
}

func TestLayoutOrigin(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	l.OriginX, l.OriginY = 5.4, 2.6
	s := glyphquad.Surface{Width: 200, Height: 100}

	_, cursors, err := l.Build(New(4, 1), a, s)
	if err != nil {
		t.Fatal(err)
	}
	x, y := s.NDCToPixel(cursors[0].Position)
	if !near(x, 5) || !near(y, 3) {
		t.Errorf("cursor at (%v,%v), want whole-pixel (5,3)", x, y)
	}
}

func TestLayoutAppendReuses(t *testing.T) {
	a := newTestAtlas(t)
	l := NewLayout(a)
	s := glyphquad.Surface{Width: 400, Height: 200}
	g := New(8, 2)
	g.Write("hello", Green)

	glyphs, cursors, err := l.Build(g, a, s)
	if err != nil {
		t.Fatal(err)
	}
	n := a.Len()
	again, cursorsAgain, err := l.Append(glyphs[:0], cursors[:0], g, a, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 5 || len(cursorsAgain) != 1 {
		t.Errorf("Append() = %d glyphs, %d cursors", len(again), len(cursorsAgain))
	}
	if &again[0] != &glyphs[0] {
		t.Error("Append() did not reuse the glyph slice")
	}
	if a.Len() != n {
		t.Errorf("second layout added atlas entries: %d -> %d", n, a.Len())
	}
}

func TestLayoutClosedAtlas(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	_ = a.Close()
	g := New(4, 1)
	g.Write("x", White)
	if _, _, err := l.Build(g, a, glyphquad.Surface{Width: 10, Height: 10}); err == nil {
		t.Error("Build() with closed atlas should fail")
	}
}

// Go Mono has no CJK glyphs, so they are drawn with U+FFFD.
func TestLayoutMissingGlyphUsesReplacement(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	s := glyphquad.Surface{Width: 200, Height: 100}

	if _, err := a.AddRune('世'); !errors.Is(err, atlas.ErrGlyphMissing) {
		t.Fatalf("AddRune('世') = %v, want ErrGlyphMissing", err)
	}

	g := New(4, 1)
	g.Write("世", White)
	glyphs, _, err := l.Build(g, a, s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(glyphs) != 1 {
		t.Fatalf("Build() produced %d glyphs, want 1", len(glyphs))
	}
	repl, ok := a.Lookup(atlas.RuneKey('\uFFFD'))
	if !ok {
		t.Fatal("U+FFFD was not added to the atlas")
	}
	if got, want := glyphs[0].UV, a.UV(repl); got != want {
		t.Errorf("UV = %v, want U+FFFD's %v", got, want)
	}
}

func TestLayoutReplacementOrder(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	l.Replacements = []rune{'界', '?'}
	s := glyphquad.Surface{Width: 200, Height: 100}

	g := New(4, 1)
	g.Write("世", White)
	glyphs, _, err := l.Build(g, a, s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	q, ok := a.Lookup(atlas.RuneKey('?'))
	if !ok || len(glyphs) != 1 || glyphs[0].UV != a.UV(q) {
		t.Errorf("missing rune was not drawn with '?'")
	}
}

func TestLayoutNoReplacementAvailable(t *testing.T) {
	a := newTestAtlas(t)
	l := testLayout()
	l.Replacements = []rune{'界', '漢'}
	s := glyphquad.Surface{Width: 200, Height: 100}

	g := New(4, 1)
	g.Write("世", White)
	if _, _, err := l.Build(g, a, s); !errors.Is(err, atlas.ErrGlyphMissing) {
		t.Errorf("Build() = %v, want ErrGlyphMissing", err)
	}
}
