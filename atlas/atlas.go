// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphquad"
)

// Default atlas settings.
const (
	// DefaultSize is the default atlas dimension (2048x2048).
	DefaultSize = 2048

	// MinSize is the smallest accepted atlas dimension.
	MinSize = 64

	// DefaultPadding is the number of empty pixels kept between glyphs.
	DefaultPadding = 1

	// DefaultFontSize is the default glyph size in points.
	DefaultFontSize = 16

	// DefaultDPI makes one point equal one pixel.
	DefaultDPI = 72
)

var (
	// ErrAtlasFull is returned when a glyph does not fit in the remaining
	// atlas space.
	ErrAtlasFull = errors.New("atlas: atlas is full")

	// ErrGlyphMissing is returned when the font has no glyph for a rune.
	ErrGlyphMissing = errors.New("atlas: font has no glyph for rune")

	// ErrEmptyImage is returned by AddImage for images without pixels.
	ErrEmptyImage = errors.New("atlas: empty image")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("atlas: atlas is closed")
)

// Config configures an Atlas.
type Config struct {
	// Size is the width and height of the atlas image in pixels.
	Size int

	// Padding is the gap left to the right of and below every glyph.
	Padding int

	// FontSize is the face size in points.
	FontSize float64

	// DPI is the face resolution.
	DPI float64

	// Font is TrueType or OpenType data. Nil selects Go Mono.
	Font []byte
}

// DefaultConfig returns a 2048x2048 atlas with Go Mono at 16px.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		Padding:  DefaultPadding,
		FontSize: DefaultFontSize,
		DPI:      DefaultDPI,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Size == 0 {
		c.Size = d.Size
	}
	if c.Size < MinSize {
		c.Size = MinSize
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.DPI <= 0 {
		c.DPI = d.DPI
	}
	return c
}

// Key identifies an atlas entry: a rune from the atlas face, or a named
// color image.
type Key struct {
	Rune rune
	Name string
}

// RuneKey returns the key of a rasterized rune.
func RuneKey(r rune) Key { return Key{Rune: r} }

// ImageKey returns the key of a named color image.
func ImageKey(name string) Key { return Key{Name: name} }

// Glyph is one atlas entry.
type Glyph struct {
	// Region locates the bitmap in the atlas. Whitespace glyphs have an
	// empty region and are never drawn.
	Region Region

	// Format is FormatAlphaMask for rasterized runes and FormatDirectColor
	// for images.
	Format glyphquad.GlyphFormat

	// Bearing is the offset from the pen position on the baseline to the
	// top-left corner of the bitmap, in pixels. Y grows downward.
	Bearing image.Point

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// Blank reports whether the glyph has no pixels.
func (g Glyph) Blank() bool { return !g.Region.IsValid() }

// FaceMetrics are the vertical metrics of the atlas face in pixels.
type FaceMetrics struct {
	Ascent, Descent, LineHeight float32
	// Advance is the advance of 'M', the cell width of a monospace face.
	Advance float32
}

// Atlas packs glyph bitmaps into one RGBA image for the glyph pipeline.
//
// Alpha-mask glyphs store their coverage in every channel; the shader reads
// the red one. Color images are stored as straight (non-premultiplied)
// RGBA. Atlas is safe for concurrent use.
type Atlas struct {
	mu sync.Mutex

	cfg    Config
	img    *image.RGBA
	alloc  *shelfAllocator
	face   font.Face
	glyphs map[Key]Glyph

	dirty      image.Rectangle
	generation uint64
	closed     bool
}

// New creates an empty atlas and opens its font face.
func New(cfg Config) (*Atlas, error) {
	cfg = cfg.normalized()
	data := cfg.Font
	if data == nil {
		data = gomono.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.FontSize,
		DPI:     cfg.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: create face: %w", err)
	}
	return &Atlas{
		cfg:    cfg,
		img:    image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size)),
		alloc:  newShelfAllocator(cfg.Size, cfg.Size, cfg.Padding),
		face:   face,
		glyphs: make(map[Key]Glyph),
	}, nil
}

// AddRune rasterizes r into the atlas unless it is already present.
func (a *Atlas) AddRune(r rune) (Glyph, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return Glyph{}, ErrClosed
	}
	key := RuneKey(r)
	if g, ok := a.glyphs[key]; ok {
		return g, nil
	}

	dr, mask, maskp, advance, ok := a.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrGlyphMissing, r)
	}
	g := Glyph{
		Format:  glyphquad.FormatAlphaMask,
		Bearing: dr.Min,
		Advance: fixedToFloat(advance),
	}
	if dr.Empty() {
		a.glyphs[key] = g
		return g, nil
	}

	region, ok := a.alloc.allocate(dr.Dx(), dr.Dy())
	if !ok {
		return Glyph{}, fmt.Errorf("%w: rune %q (%dx%d)", ErrAtlasFull, r, dr.Dx(), dr.Dy())
	}
	dst := regionRect(region)
	draw.DrawMask(a.img, dst, image.White, image.Point{}, mask, maskp, draw.Src)
	a.markDirty(dst)

	g.Region = region
	a.glyphs[key] = g
	return g, nil
}

// AddRunes adds every rune of s, stopping at the first error.
func (a *Atlas) AddRunes(s string) error {
	for _, r := range s {
		if _, err := a.AddRune(r); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the entry for key without adding it.
func (a *Atlas) Lookup(key Key) (Glyph, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	g, ok := a.glyphs[key]
	return g, ok
}

// UV returns the normalized atlas origin and extent of g.
func (a *Atlas) UV(g Glyph) glyphquad.UVRect {
	size := float32(a.cfg.Size)
	return glyphquad.UVRect{
		U:  float32(g.Region.X) / size,
		V:  float32(g.Region.Y) / size,
		DU: float32(g.Region.Width) / size,
		DV: float32(g.Region.Height) / size,
	}
}

// Metrics returns the vertical metrics of the atlas face.
func (a *Atlas) Metrics() FaceMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	m := a.face.Metrics()
	adv, _ := a.face.GlyphAdvance('M')
	return FaceMetrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
		Advance:    fixedToFloat(adv),
	}
}

// Image returns the backing image. Callers must not modify it, and must
// not read it while another goroutine adds entries; Snapshot takes a copy
// that is safe to use concurrently.
func (a *Atlas) Image() *image.RGBA { return a.img }

// Snapshot copies the atlas image into dst under the atlas lock and
// returns the copy with the generation it shows. dst is reallocated when it
// is nil or of another size. Taking a snapshot clears the dirty rectangle.
func (a *Atlas) Snapshot(dst *image.RGBA) (*image.RGBA, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if dst == nil || dst.Rect != a.img.Rect {
		dst = image.NewRGBA(a.img.Rect)
	}
	copy(dst.Pix, a.img.Pix)
	a.dirty = image.Rectangle{}
	return dst, a.generation
}

// Size returns the atlas width and height in pixels.
func (a *Atlas) Size() int { return a.cfg.Size }

// Len returns the number of entries, including blank glyphs.
func (a *Atlas) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.glyphs)
}

// Utilization returns the fraction of the atlas covered by bitmaps.
func (a *Atlas) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.alloc.utilization()
}

// Generation counts the changes made to the atlas image.
func (a *Atlas) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// TakeDirty returns the bounding box of pixels changed since the previous
// call and clears it. An empty rectangle means nothing changed.
func (a *Atlas) TakeDirty() image.Rectangle {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := a.dirty
	a.dirty = image.Rectangle{}
	return d
}

// Reset removes every entry and clears the image.
func (a *Atlas) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.img.Pix)
	clear(a.glyphs)
	a.alloc.reset()
	a.markDirty(a.img.Bounds())
}

// Close releases the font face.
func (a *Atlas) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	return a.face.Close()
}

func (a *Atlas) markDirty(r image.Rectangle) {
	a.dirty = a.dirty.Union(r)
	a.generation++
}

func regionRect(r Region) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
