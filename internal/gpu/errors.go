// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "errors"

var (
	// ErrNilDevice is returned when a pipeline or buffer is created without
	// a HAL device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrPipelineNotInitialized is returned when drawing with a pipeline
	// whose GPU objects have not been created yet.
	ErrPipelineNotInitialized = errors.New("gpu: pipeline not initialized")

	// ErrAtlasNotBound is returned when glyphs are drawn before an atlas
	// texture has been uploaded and bound.
	ErrAtlasNotBound = errors.New("gpu: atlas not bound")

	// ErrTooManyInstances is returned when a frame holds more instances
	// than the configured maximum.
	ErrTooManyInstances = errors.New("gpu: too many instances")

	// ErrEmptyAtlas is returned when uploading an atlas image with no pixels.
	ErrEmptyAtlas = errors.New("gpu: empty atlas image")

	// ErrInvalidTargetSize is returned for a zero-sized offscreen target.
	ErrInvalidTargetSize = errors.New("gpu: invalid target size")

	// ErrRendererClosed is returned by a Renderer after Close.
	ErrRendererClosed = errors.New("gpu: renderer closed")

	// ErrNoAdapter is returned when OpenDevice finds no usable adapter.
	ErrNoAdapter = errors.New("gpu: no GPU adapter found")
)
