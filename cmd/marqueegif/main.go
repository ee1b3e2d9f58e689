// Command marqueegif renders a marquee animation headlessly and writes it
// out as an animated GIF.
//
//	marqueegif -phrase "Breaking news" -width 640 -frames 180 -o marquee.gif
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/marquee"
)

func main() {
	var (
		phrase     = flag.String("phrase", "Hello from marquee", "text to scroll")
		fontPath   = flag.String("font", "", "TTF/OTF file to use (embedded fallback when empty)")
		fontSize   = flag.Float64("size", 24, "font size in pixels")
		width      = flag.Int("width", 640, "logical surface width")
		speed      = flag.Float64("speed", 2, "pixels per frame")
		reverse    = flag.Bool("reverse", false, "scroll right to left")
		upper      = flag.Bool("uppercase", false, "upper-case the phrase")
		textColor  = flag.String("color", "#222222", "text color")
		background = flag.String("background", "white", "background color")
		paddingX   = flag.Float64("padding-x", 40, "gap between copies")
		paddingY   = flag.Float64("padding-y", 24, "vertical padding")
		scale      = flag.Float64("scale", 1, "device pixel ratio")
		frames     = flag.Int("frames", 180, "number of frames to render")
		output     = flag.String("o", "marquee.gif", "output file")
		pngDir     = flag.String("png-dir", "", "also dump per-frame PNGs into this directory")
	)
	flag.Parse()

	dc := gg.NewContext(*width, 64)
	defer func() { _ = dc.Close() }()

	container := &marquee.Element{Marker: true, ClientWidth: float64(*width)}
	cv := marquee.NewCanvas(dc,
		marquee.WithElement(&marquee.Element{Parent: container}),
		marquee.WithScaleProvider(func() float64 { return *scale }),
	)

	family := "sans-serif"
	loader := marquee.NewFontLoader()
	if *fontPath != "" {
		registered, err := loader.RegisterFile(*fontPath)
		if err != nil {
			log.Fatalf("register font: %v", err)
		}
		family = registered
	}

	sched := marquee.NewManualScheduler()
	eng := marquee.NewEngine(cv,
		marquee.WithText(marquee.FormatPhrase(*phrase, *reverse, *upper)),
		marquee.WithFont(fmt.Sprintf("%gpx %s", *fontSize, family)),
		marquee.WithTextColor(*textColor),
		marquee.WithBackgroundColor(*background),
		marquee.WithReverse(*reverse),
		marquee.WithPaddingX(*paddingX),
		marquee.WithPaddingY(*paddingY),
		marquee.WithSpeed(*speed),
	)
	eng.SetScheduler(sched)
	eng.SetFontLoader(loader)

	if err := eng.Init(); err != nil {
		log.Fatalf("init engine: %v", err)
	}
	defer eng.Destroy()

	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0o755); err != nil {
			log.Fatalf("create %s: %v", *pngDir, err)
		}
	}

	anim := &gif.GIF{}
	for i := 0; i < *frames; i++ {
		sched.Step()
		anim.Image = append(anim.Image, palettize(cv.Image()))
		anim.Delay = append(anim.Delay, 2) // ~60fps in 10ms units
		if *pngDir != "" {
			name := filepath.Join(*pngDir, fmt.Sprintf("frame-%04d.png", i))
			if err := dc.SavePNG(name); err != nil {
				log.Fatalf("save %s: %v", name, err)
			}
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		log.Fatalf("encode gif: %v", err)
	}

	s := eng.Snapshot()
	log.Printf("wrote %s: %d frames, %dx%d physical, %d instances\n",
		*output, *frames, s.PhysicalW, s.PhysicalH, len(s.Positions))
}

// palettize converts one frame to the paletted form GIF requires.
func palettize(src image.Image) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, b, src, b.Min)
	return dst
}
