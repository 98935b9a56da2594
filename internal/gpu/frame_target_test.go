// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphquad"
)

func TestFrameTargetEnsure(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tests := []struct {
		name    string
		samples uint32
		msaa    bool
	}{
		{"single sample", 1, false},
		{"msaa", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := NewFrameTarget(device, PipelineConfig{SampleCount: tt.samples})
			defer ft.Destroy()

			if err := ft.Ensure(0, 10); !errors.Is(err, ErrInvalidTargetSize) {
				t.Errorf("Ensure(0,10) = %v, want ErrInvalidTargetSize", err)
			}
			if err := ft.Ensure(32, 16); err != nil {
				t.Fatalf("Ensure failed: %v", err)
			}
			if w, h := ft.Size(); w != 32 || h != 16 {
				t.Errorf("Size() = %dx%d", w, h)
			}
			if ft.ByteSize() != 32*16*4 {
				t.Errorf("ByteSize() = %d", ft.ByteSize())
			}
			if (ft.msaaTex != nil) != tt.msaa {
				t.Errorf("msaa texture present = %v, want %v", ft.msaaTex != nil, tt.msaa)
			}

			att := ft.ColorAttachment(glyphquad.RGBA{R: 0.5, A: 1})
			if att.LoadOp != gputypes.LoadOpClear || att.StoreOp != gputypes.StoreOpStore {
				t.Error("attachment must clear and store")
			}
			if att.ClearValue.R != 0.5 || att.ClearValue.A != 1 {
				t.Errorf("ClearValue = %+v", att.ClearValue)
			}
			if tt.msaa && (att.View != ft.msaaView || att.ResolveTarget != ft.resolveView) {
				t.Error("msaa attachment must resolve into the readable texture")
			}
			if !tt.msaa && (att.View != ft.resolveView || att.ResolveTarget != nil) {
				t.Error("single-sample attachment must render into the readable texture")
			}

			ft.Destroy()
			if w, h := ft.Size(); w != 0 || h != 0 {
				t.Error("Destroy should reset size")
			}
		})
	}
}

func TestFrameTargetImageSwizzle(t *testing.T) {
	raw := []byte{10, 20, 30, 40, 50, 60, 70, 80}

	bgra := &FrameTarget{config: PipelineConfig{TargetFormat: gputypes.TextureFormatBGRA8Unorm}, width: 2, height: 1}
	img := bgra.Image(raw)
	want := []byte{30, 20, 10, 40, 70, 60, 50, 80}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("BGRA Image().Pix = %v, want %v", img.Pix, want)
		}
	}

	rgba := &FrameTarget{config: PipelineConfig{TargetFormat: gputypes.TextureFormatRGBA8Unorm}, width: 2, height: 1}
	img = rgba.Image(raw)
	for i := range raw {
		if img.Pix[i] != raw[i] {
			t.Fatalf("RGBA Image().Pix = %v, want %v", img.Pix, raw)
		}
	}
	if raw[0] != 10 {
		t.Error("Image must not modify its input")
	}
}
