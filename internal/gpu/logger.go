// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"log/slog"

	"github.com/gogpu/glyphquad"
)

// logOr returns l, or glyphquad.Logger when l is nil. Components log
// through the logger of the Renderer that owns them.
func logOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return glyphquad.Logger()
}
