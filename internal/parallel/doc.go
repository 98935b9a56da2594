// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs CPU rendering work on a fixed set of goroutines.
//
// The software renderer splits its target into horizontal bands with
// SplitRows and draws every band as one task. Bands never share pixels, so
// tasks need no locking and per-pixel draw order is preserved.
package parallel
