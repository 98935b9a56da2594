// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import "errors"

var (
	// ErrUnknownFormat is returned by Validate for an instance whose format
	// is not a declared GlyphFormat.
	ErrUnknownFormat = errors.New("glyphquad: unknown glyph format")

	// ErrShortBuffer is returned when decoding from a buffer that does not
	// hold a whole number of instances.
	ErrShortBuffer = errors.New("glyphquad: buffer length is not a multiple of the instance stride")

	// ErrInvalidSurface is returned when converting pixels against a
	// surface with a zero or negative dimension.
	ErrInvalidSurface = errors.New("glyphquad: invalid surface size")
)
