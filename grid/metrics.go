// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import (
	"math"

	"github.com/gogpu/glyphquad/atlas"
)

// Metrics is the pixel geometry of one cell.
type Metrics struct {
	CellWidth  float32
	CellHeight float32

	// Baseline is the distance from the top of a cell to the baseline.
	Baseline float32
}

// Default cell geometry for a 16px font without face metrics.
const (
	defaultFontSize   = 16
	defaultWidthRatio = 0.6
	defaultLineRatio  = 1.2
)

// DefaultMetrics returns the cell size used when no face is available:
// 0.6 by 1.2 times a 16px font.
func DefaultMetrics() Metrics {
	return Metrics{
		CellWidth:  defaultFontSize * defaultWidthRatio,
		CellHeight: defaultFontSize * defaultLineRatio,
		Baseline:   defaultFontSize,
	}
}

// MetricsFromFace derives whole-pixel cell geometry from face metrics.
func MetricsFromFace(m atlas.FaceMetrics) Metrics {
	if m.Advance <= 0 || m.LineHeight <= 0 {
		return DefaultMetrics()
	}
	return Metrics{
		CellWidth:  ceil(m.Advance),
		CellHeight: ceil(m.LineHeight),
		Baseline:   ceil(m.Ascent),
	}
}

// GridSize returns how many whole cells fit in a w by h pixel surface.
func (m Metrics) GridSize(w, h int) (cols, rows int) {
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		return 0, 0
	}
	return int(float32(w) / m.CellWidth), int(float32(h) / m.CellHeight)
}

// CellOrigin returns the top-left pixel of a cell.
func (m Metrics) CellOrigin(col, row int) (x, y float32) {
	return float32(col) * m.CellWidth, float32(row) * m.CellHeight
}

func ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
