// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle is how a host application lends its device to
// NewFromProvider. Besides gpucontext.DeviceProvider the handle has to
// implement gpucontext.HalProvider so the renderer can reach the HAL
// device and queue.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle answers every query with nil. NewFromProvider rejects
// it; hosts use it when they fall back to a SoftwareRenderer.
type NullDeviceHandle struct{}

func (NullDeviceHandle) Device() gpucontext.Device   { return nil }
func (NullDeviceHandle) Queue() gpucontext.Queue     { return nil }
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat is TextureFormatUndefined.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
