// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/glyph.wgsl
var glyphShaderSource string

//go:embed shaders/cursor.wgsl
var cursorShaderSource string

// Shader entry points shared by both pipelines.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// GlyphShaderSource returns the WGSL source of the glyph pipeline.
func GlyphShaderSource() string { return glyphShaderSource }

// CursorShaderSource returns the WGSL source of the cursor pipeline.
func CursorShaderSource() string { return cursorShaderSource }

// ShaderModules holds the SPIR-V produced by compiling the embedded WGSL
// sources offline with naga.
type ShaderModules struct {
	Glyph  []byte
	Cursor []byte
}

// IsValid reports whether both modules compiled to non-empty SPIR-V.
func (s *ShaderModules) IsValid() bool {
	return s != nil && len(s.Glyph) > 0 && len(s.Cursor) > 0
}

// CompileShaders translates both WGSL sources to SPIR-V. Pipelines hand WGSL
// straight to the HAL; this is used to validate the sources ahead of time
// and by tools that want the binaries.
func CompileShaders() (*ShaderModules, error) {
	glyph, err := naga.Compile(glyphShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile glyph shader: %w", err)
	}
	cursor, err := naga.Compile(cursorShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile cursor shader: %w", err)
	}
	logOr(nil).Debug("shaders compiled", "glyph_bytes", len(glyph), "cursor_bytes", len(cursor))
	return &ShaderModules{Glyph: glyph, Cursor: cursor}, nil
}
