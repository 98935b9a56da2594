// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package grid holds a terminal screen as a grid of character cells and
// lays it out as glyph and cursor instances for the renderer.
//
// Escape sequence parsing is left to the caller: Grid only understands
// printable runes, newline, carriage return, tab and backspace.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// ErrOutOfRange is returned for cell coordinates outside the grid.
var ErrOutOfRange = errors.New("grid: cell out of range")

// tabStop is the column spacing of tab stops.
const tabStop = 8

// Cell is one character cell.
type Cell struct {
	Rune rune
	Fg   Color

	// Continuation marks the right half of a double-width rune. It has no
	// rune of its own.
	Continuation bool
}

// Blank reports whether the cell draws nothing.
func (c Cell) Blank() bool {
	return c.Continuation || c.Rune == 0 || c.Rune == ' '
}

// Grid is a fixed-size screen of cells plus a cursor. Writing past the last
// row scrolls the contents up.
//
// Filling the last column does not wrap at once: the cursor stays on that
// column until the next printable rune, so a full line followed by a
// newline does not leave an empty row.
type Grid struct {
	cols, rows int
	cells      []Cell
	col, row   int

	// wrapPending is set after a rune filled the last column.
	wrapPending bool

	// CursorVisible controls whether Layout emits a cursor box.
	CursorVisible bool
}

// New returns an empty cols by rows grid with a visible cursor at the
// origin. Non-positive sizes are raised to one.
func New(cols, rows int) *Grid {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Grid{
		cols:          cols,
		rows:          rows,
		cells:         make([]Cell, cols*rows),
		CursorVisible: true,
	}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// Cursor returns the cursor cell.
func (g *Grid) Cursor() (col, row int) { return g.col, g.row }

// MoveCursor places the cursor, clamping to the grid.
func (g *Grid) MoveCursor(col, row int) {
	g.wrapPending = false
	g.col = min(max(col, 0), g.cols-1)
	g.row = min(max(row, 0), g.rows-1)
}

// At returns the cell at (col, row), or a zero Cell when out of range.
func (g *Grid) At(col, row int) Cell {
	if !g.inRange(col, row) {
		return Cell{}
	}
	return g.cells[row*g.cols+col]
}

// Set replaces one cell without moving the cursor. Replacing either half of
// a double-width rune blanks the other half.
func (g *Grid) Set(col, row int, c Cell) error {
	if !g.inRange(col, row) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, col, row, g.cols, g.rows)
	}
	g.erase(col, row)
	g.cells[row*g.cols+col] = c
	return nil
}

// erase blanks a cell along with the other half of a wide rune it belongs
// to.
func (g *Grid) erase(col, row int) {
	i := row*g.cols + col
	switch {
	case g.cells[i].Continuation:
		if col > 0 {
			g.cells[i-1] = Cell{}
		}
	case col+1 < g.cols && g.cells[i+1].Continuation:
		g.cells[i+1] = Cell{}
	}
	g.cells[i] = Cell{}
}

func (g *Grid) inRange(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Write prints s at the cursor in color fg, wrapping at the right edge.
func (g *Grid) Write(s string, fg Color) {
	for _, r := range s {
		g.put(r, fg)
	}
}

func (g *Grid) put(r rune, fg Color) {
	pending := g.wrapPending
	g.wrapPending = false
	switch r {
	case '\n':
		g.newline()
		return
	case '\r':
		g.col = 0
		return
	case '\t':
		next := (g.col/tabStop + 1) * tabStop
		g.col = min(next, g.cols-1)
		return
	case '\b':
		g.col = max(g.col-1, 0)
		return
	}
	if r < ' ' || r == 0x7f {
		g.wrapPending = pending
		return
	}

	w := min(RuneWidth(r), g.cols)
	if pending || g.col+w > g.cols {
		g.newline()
	}
	g.erase(g.col, g.row)
	g.cells[g.row*g.cols+g.col] = Cell{Rune: r, Fg: fg}
	if w == 2 {
		g.erase(g.col+1, g.row)
		g.cells[g.row*g.cols+g.col+1] = Cell{Fg: fg, Continuation: true}
	}
	g.col += w
	if g.col >= g.cols {
		g.col = g.cols - 1
		g.wrapPending = true
	}
}

func (g *Grid) newline() {
	g.col = 0
	if g.row+1 < g.rows {
		g.row++
		return
	}
	g.scroll()
}

// scroll moves every row up by one and clears the last row.
func (g *Grid) scroll() {
	copy(g.cells, g.cells[g.cols:])
	clear(g.cells[(g.rows-1)*g.cols:])
}

// Clear blanks every cell and homes the cursor.
func (g *Grid) Clear() {
	clear(g.cells)
	g.col, g.row = 0, 0
	g.wrapPending = false
}

// Resize changes the grid size, keeping the top-left contents and clamping
// the cursor.
func (g *Grid) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == g.cols && rows == g.rows {
		return
	}
	cells := make([]Cell, cols*rows)
	for r := 0; r < min(rows, g.rows); r++ {
		copy(cells[r*cols:r*cols+min(cols, g.cols)], g.cells[r*g.cols:])
		// A wide rune cut in half by the new edge is dropped.
		if last := &cells[r*cols+cols-1]; cols < g.cols && cols > 1 && RuneWidth(last.Rune) == 2 {
			*last = Cell{}
		}
	}
	g.cols, g.rows, g.cells = cols, rows, cells
	g.MoveCursor(g.col, g.row)
}

// String returns the grid text, one line per row with trailing blanks
// removed.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		var line strings.Builder
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			switch {
			case cell.Continuation:
			case cell.Rune == 0:
				line.WriteByte(' ')
			default:
				line.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RuneWidth returns the number of cells r occupies: 2 for East Asian wide
// and fullwidth runes, 1 otherwise.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
