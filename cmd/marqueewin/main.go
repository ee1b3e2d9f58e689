// Command marqueewin shows a marquee in a desktop window. The window's
// refresh ticker drives the frame cycle and blits the surface image from
// the same goroutine, so nothing reads pixels mid-draw.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/gogpu/marquee"
)

const refreshInterval = 33 * time.Millisecond

func main() {
	var (
		phrase     = flag.String("phrase", "Hello from marquee", "text to scroll")
		fontSize   = flag.Float64("size", 28, "font size in pixels")
		width      = flag.Int("width", 800, "window width")
		speed      = flag.Float64("speed", 2, "pixels per frame")
		reverse    = flag.Bool("reverse", false, "scroll right to left")
		textColor  = flag.String("color", "#e8e8e8", "text color")
		background = flag.String("background", "#18202c", "background color")
	)
	flag.Parse()

	a := app.New()
	w := a.NewWindow("marquee")

	dc := gg.NewContext(*width, 64)
	parent := &marquee.Element{Marker: true, ClientWidth: float64(*width)}
	cv := marquee.NewCanvas(dc, marquee.WithElement(&marquee.Element{Parent: parent}))

	eng := marquee.NewEngine(cv,
		marquee.WithText(marquee.FormatPhrase(*phrase, *reverse, false)),
		marquee.WithFont(fmt.Sprintf("%gpx sans-serif", *fontSize)),
		marquee.WithTextColor(*textColor),
		marquee.WithBackgroundColor(*background),
		marquee.WithReverse(*reverse),
		marquee.WithPaddingX(48),
		marquee.WithPaddingY(28),
		marquee.WithSpeed(*speed),
	)
	sched := marquee.NewManualScheduler()
	eng.SetScheduler(sched)
	if err := eng.Init(); err != nil {
		log.Fatalf("init engine: %v", err)
	}

	img := fynecanvas.NewImageFromImage(cv.Image())
	img.FillMode = fynecanvas.ImageFillContain
	img.ScaleMode = fynecanvas.ImageScalePixels

	pause := widget.NewButton("Pause", nil)
	pause.OnTapped = func() {
		paused := !cv.Paused()
		cv.SetPaused(paused)
		if paused {
			pause.SetText("Resume")
		} else {
			pause.SetText("Pause")
		}
	}

	w.SetContent(container.NewBorder(nil, pause, nil, nil, img))
	w.Resize(fyne.NewSize(float32(*width), 120))

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		lastW := float32(0)
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if cw := w.Canvas().Size().Width; cw != lastW && cw > 0 {
					lastW = cw
					parent.ClientWidth = float64(cw)
					if err := eng.Resize(); err != nil {
						marquee.Logger().Warn("resize failed", "error", err)
					}
				}
				sched.Step()
				img.Image = cv.Image()
				img.Refresh()
			}
		}
	}()

	w.SetOnClosed(func() {
		close(stop)
		eng.Destroy()
		_ = dc.Close()
	})
	w.ShowAndRun()
}
