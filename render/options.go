// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphquad"
)

// Config holds renderer settings. Build one with Option values.
type Config struct {
	// MaxInstances caps glyph and cursor instances per frame. Zero means no
	// cap.
	MaxInstances int

	// TargetFormat is the color format of the pass the GPU pipelines draw
	// into. RenderOffscreen always reads back as RGBA.
	TargetFormat gputypes.TextureFormat

	// SampleCount is the MSAA sample count of that pass.
	SampleCount uint32

	CursorStyle glyphquad.CursorStyle

	// ClearColor fills the target before each RenderOffscreen frame.
	ClearColor glyphquad.RGBA

	// Logger receives this renderer's logs. Nil means glyphquad.Logger.
	Logger *slog.Logger

	// Workers is the number of goroutines SoftwareRenderer draws with.
	// Zero or one draws on the calling goroutine.
	Workers int
}

// DefaultConfig returns an uncapped, single-sampled BGRA8 configuration
// with a white cursor on black.
func DefaultConfig() Config {
	return Config{
		TargetFormat: gputypes.TextureFormatBGRA8Unorm,
		SampleCount:  1,
		CursorStyle:  glyphquad.DefaultCursorStyle(),
		ClearColor:   glyphquad.Black,
	}
}

// Option configures a renderer during creation.
//
// Example:
//
//	r, err := render.New(device, queue,
//	    render.WithMaxInstances(80*24),
//	    render.WithClearColor(glyphquad.Hex("#1e1e1e")))
type Option func(*Config)

// WithCursorStyle sets the cursor color.
func WithCursorStyle(style glyphquad.CursorStyle) Option {
	return func(c *Config) { c.CursorStyle = style }
}

// WithClearColor sets the color frames are cleared to.
func WithClearColor(color glyphquad.RGBA) Option {
	return func(c *Config) { c.ClearColor = color }
}

// WithMaxInstances caps the glyph and cursor instances accepted per frame.
// Larger frames fail with an error instead of growing the buffers.
func WithMaxInstances(n int) Option {
	return func(c *Config) { c.MaxInstances = max(n, 0) }
}

// WithTargetFormat sets the color format of host render passes passed to
// Record.
func WithTargetFormat(format gputypes.TextureFormat) Option {
	return func(c *Config) { c.TargetFormat = format }
}

// WithSampleCount sets the MSAA sample count of host render passes.
func WithSampleCount(n uint32) Option {
	return func(c *Config) { c.SampleCount = n }
}

// WithLogger sends this renderer's logs to l instead of glyphquad.Logger.
// Other renderers are not affected.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithWorkers makes SoftwareRenderer split each frame into n row bands
// drawn concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = max(n, 0) }
}

// logger returns the configured logger or the package-wide one.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return glyphquad.Logger()
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
