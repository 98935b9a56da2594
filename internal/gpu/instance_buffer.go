// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// InstanceBuffer is a per-instance vertex buffer that is rewritten every
// frame and grows on demand. It never shrinks.
type InstanceBuffer struct {
	device hal.Device
	queue  hal.Queue
	log    *slog.Logger
	label  string
	stride int

	buf      hal.Buffer
	capacity int // in instances
	count    int
	max      int // 0 means unlimited
}

// NewInstanceBuffer creates an empty buffer for records of stride bytes.
// No GPU memory is allocated until the first Write. maxInstances bounds a
// single frame; zero disables the bound.
func NewInstanceBuffer(device hal.Device, queue hal.Queue, label string, stride, maxInstances int) *InstanceBuffer {
	return &InstanceBuffer{
		device: device,
		queue:  queue,
		label:  label,
		stride: stride,
		max:    maxInstances,
	}
}

// Write replaces the buffer contents with data, which must hold a whole
// number of records. The buffer is reallocated when data does not fit, to
// the old capacity plus one and a half times the required count.
//
// A failed Write leaves the buffer empty, so a later draw never reads past
// the allocation or draws a stale frame.
func (b *InstanceBuffer) Write(data []byte) error {
	b.count = 0
	if b.device == nil || b.queue == nil {
		return ErrNilDevice
	}
	if len(data)%b.stride != 0 {
		return fmt.Errorf("%s: %d bytes is not a multiple of stride %d", b.label, len(data), b.stride)
	}
	n := len(data) / b.stride
	if b.max > 0 && n > b.max {
		return fmt.Errorf("%w: %s has %d, limit %d", ErrTooManyInstances, b.label, n, b.max)
	}
	if n == 0 {
		return nil
	}

	if n > b.capacity || b.buf == nil {
		if err := b.grow(n); err != nil {
			return err
		}
	}
	b.queue.WriteBuffer(b.buf, 0, data)
	b.count = n
	return nil
}

// Reset drops the instances of the last Write without freeing memory.
func (b *InstanceBuffer) Reset() { b.count = 0 }

func (b *InstanceBuffer) grow(required int) error {
	capacity := b.capacity + required*3/2
	if capacity < required {
		capacity = required
	}

	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: b.label,
		Size:  uint64(capacity * b.stride),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", b.label, err)
	}
	if b.buf != nil {
		b.device.DestroyBuffer(b.buf)
	}
	logOr(b.log).Debug("instance buffer grown", "label", b.label, "from", b.capacity, "to", capacity)
	b.buf = buf
	b.capacity = capacity
	return nil
}

// Count returns the number of instances from the last Write.
func (b *InstanceBuffer) Count() uint32 { return uint32(b.count) } //nolint:gosec // bounded by allocation size

// Capacity returns how many instances fit without reallocating.
func (b *InstanceBuffer) Capacity() int { return b.capacity }

// Buffer returns the underlying HAL buffer, or nil before the first
// non-empty Write.
func (b *InstanceBuffer) Buffer() hal.Buffer { return b.buf }

// Destroy releases the GPU buffer.
func (b *InstanceBuffer) Destroy() {
	if b.buf != nil && b.device != nil {
		b.device.DestroyBuffer(b.buf)
	}
	b.buf = nil
	b.capacity = 0
	b.count = 0
}
