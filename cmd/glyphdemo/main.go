// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glyphdemo renders a sample terminal screen to a PNG.
//
// By default the frame is drawn by the CPU renderer. With -gpu it is drawn
// by the glyph and cursor pipelines on a private Vulkan device.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
	"github.com/gogpu/glyphquad/grid"
	"github.com/gogpu/glyphquad/render"
)

func main() {
	var (
		cols     = flag.Int("cols", 64, "grid columns")
		rows     = flag.Int("rows", 20, "grid rows")
		fontPath = flag.String("font", "", "TrueType/OpenType font (default Go Mono)")
		fontSize = flag.Float64("size", atlas.DefaultFontSize, "font size in pixels")
		output   = flag.String("output", "glyphdemo.png", "output file")
		useGPU   = flag.Bool("gpu", false, "render on the GPU")
		verbose  = flag.Bool("v", false, "debug logging")
		bgHex    = flag.String("bg", "#101418", "background color")
		curHex   = flag.String("cursor", "#e0e0e0", "cursor color")
	)
	flag.Parse()

	bg, err := glyphquad.ParseHex(*bgHex)
	if err != nil {
		log.Fatalf("Invalid -bg: %v", err)
	}
	cur, err := glyphquad.ParseHex(*curHex)
	if err != nil {
		log.Fatalf("Invalid -cursor: %v", err)
	}
	opts := []render.Option{
		render.WithClearColor(bg),
		render.WithCursorStyle(glyphquad.CursorStyle{Color: cur}),
	}

	if *verbose {
		glyphquad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := atlas.DefaultConfig()
	cfg.FontSize = *fontSize
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		cfg.Font = data
	}
	a, err := atlas.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create atlas: %v", err)
	}
	defer a.Close()

	screen := grid.New(*cols, *rows)
	writeSample(screen)

	layout := grid.NewLayout(a)
	w := int(layout.Metrics.CellWidth) * *cols
	h := int(layout.Metrics.CellHeight) * *rows
	surface, err := glyphquad.NewSurface(w, h)
	if err != nil {
		log.Fatalf("Invalid surface: %v", err)
	}

	glyphs, cursors, err := layout.Build(screen, a, surface)
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}
	badge, err := badgeInstance(a, layout, surface, *cols)
	if err != nil {
		log.Fatalf("Failed to add badge: %v", err)
	}
	glyphs = append(glyphs, badge)

	var r render.Renderer
	if *useGPU {
		gr, err := render.Open(opts...)
		if err != nil {
			log.Fatalf("Failed to open GPU: %v", err)
		}
		log.Printf("Rendering on %s", gr.DeviceName())
		r = gr
	} else {
		r = render.NewSoftwareRenderer(append(opts, render.WithWorkers(runtime.NumCPU()))...)
	}
	defer r.Close()

	if err := r.UploadAtlas(a); err != nil {
		log.Fatalf("Atlas upload failed: %v", err)
	}
	img, err := r.RenderOffscreen(render.Frame{Glyphs: glyphs, Cursors: cursors}, w, h)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d glyphs, atlas %.1f%% used)\n",
		*output, w, h, len(glyphs), a.Utilization()*100)
}

// writeSample fills the grid with a palette listing, wide runes and a
// prompt, leaving the cursor after the prompt.
func writeSample(g *grid.Grid) {
	g.Write("glyphquad demo\n\n", grid.BrightWhite)
	for c := grid.Red; c <= grid.White; c++ {
		g.Write(fmt.Sprintf("%-9s", c), c)
		g.Write(fmt.Sprintf("%-14s", c+grid.BrightBlack), c+grid.BrightBlack)
		g.Write("\n", grid.White)
	}
	g.Write("\nwide: 漢字 ｶﾅ ＡＢＣ\n", grid.BrightYellow)
	g.Write("rgb:  ", grid.White)
	for i := 0; i < 16; i++ {
		g.Write("█", grid.RGB(uint8(i*16), uint8(255-i*16), 128))
	}
	g.Write("\n\n$ ", grid.BrightGreen)
}

// badgeInstance adds a small color image to the atlas and places it at the
// top-right corner as a direct-color glyph.
func badgeInstance(a *atlas.Atlas, l grid.Layout, s glyphquad.Surface, cols int) (glyphquad.GlyphInstance, error) {
	size := int(l.Metrics.CellHeight)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / size),
				G: uint8(255 * y / size),
				B: 200,
				A: 255,
			})
		}
	}
	g, err := a.AddImage("badge", img)
	if err != nil {
		return glyphquad.GlyphInstance{}, err
	}
	x, y := l.Metrics.CellOrigin(cols-2, 0)
	return glyphquad.GlyphInstance{
		Position: s.RectToNDC(x, y, float32(g.Region.Width), float32(g.Region.Height)),
		UV:       a.UV(g),
		Format:   g.Format,
	}, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
