// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false so callers never
// build attributes for disabled levels.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

var current atomic.Pointer[slog.Logger]

// SetLogger installs the logger shared by glyphquad and its sub-packages.
// Nothing is logged until SetLogger is called; nil restores that state.
// Renderers created with render.WithLogger log there instead.
//
// Levels:
//   - [slog.LevelDebug]: buffer growth, pipeline creation, atlas uploads, frame stats
//   - [slog.LevelInfo]: adapter selection
//   - [slog.LevelWarn]: atlas full, resource release errors
//
// SetLogger may be called while other goroutines are logging.
//
//	glyphquad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
