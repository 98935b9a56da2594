// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import (
	"image/color"
	"testing"
)

var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32768, wantG: 0, wantB: 0, wantA: 32768,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"f00a", color.NRGBA{255, 0, 0, 170}},
		{"#3498db", color.NRGBA{0x34, 0x98, 0xdb, 255}},
		{"3498db80", color.NRGBA{0x34, 0x98, 0xdb, 0x80}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in).Color(); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "12345", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) succeeded", in)
		}
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	original := color.NRGBA{R: 200, G: 80, B: 10, A: 255}
	if got := FromColor(original).Color(); got != original {
		t.Errorf("roundtrip: %v -> %v", original, got)
	}
	if got := RGB8(200, 80, 10).Color(); got != original {
		t.Errorf("RGB8 = %v, want %v", got, original)
	}
}

func TestPremultiply(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Premultiply()
	want := RGBA{R: 0.5, G: 0.25, B: 0, A: 0.5}
	if got != want {
		t.Errorf("Premultiply() = %v, want %v", got, want)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
