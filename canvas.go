package marquee

import (
	"image"
	"math"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Canvas binds a gg drawing context to the marquee's view of the page: the
// layout element it sits in, the device scale factor, and the
// caller-controlled pause signal the frame cycle reads each tick.
type Canvas struct {
	dc        *gg.Context
	elem      *Element
	scaleFunc func() float64
	paused    atomic.Bool
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*Canvas)

// WithElement places the canvas in a layout ancestry; the engine resolves
// its sizing container by walking up from this element's parent.
func WithElement(el *Element) CanvasOption {
	return func(c *Canvas) { c.elem = el }
}

// WithScaleProvider supplies the device pixel ratio lookup. The default
// provider always returns 1.
func WithScaleProvider(fn func() float64) CanvasOption {
	return func(c *Canvas) { c.scaleFunc = fn }
}

// NewCanvas wraps a drawing context. A nil context is allowed here and
// surfaces as ErrNoContext from [Engine.Init].
func NewCanvas(dc *gg.Context, opts ...CanvasOption) *Canvas {
	c := &Canvas{dc: dc}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Context returns the drawable context, or ErrNoContext when none can be
// obtained.
func (c *Canvas) Context() (*gg.Context, error) {
	if c == nil || c.dc == nil {
		return nil, ErrNoContext
	}
	return c.dc, nil
}

// Element returns the canvas's layout element, nil when detached.
func (c *Canvas) Element() *Element {
	return c.elem
}

// Scale returns the device pixel ratio rounded to 2 decimals, floored at
// a sane minimum so a broken provider cannot zero the surface.
func (c *Canvas) Scale() float64 {
	s := 1.0
	if c.scaleFunc != nil {
		s = c.scaleFunc()
	}
	if s <= 0 {
		s = 1.0
	}
	return math.Round(s*100) / 100
}

// SetPaused toggles the pause signal. Conventionally entered on
// pointer-enter and exited on pointer-leave; the frame cycle keeps running
// while paused but skips position updates and redraws.
func (c *Canvas) SetPaused(paused bool) {
	c.paused.Store(paused)
}

// Paused reports the pause signal.
func (c *Canvas) Paused() bool {
	return c.paused.Load()
}

// Image exposes the surface's current pixels, for hosts that present the
// frame elsewhere (a window, a terminal cell grid, a GIF encoder).
// Returns nil when the canvas has no context.
func (c *Canvas) Image() image.Image {
	if c == nil || c.dc == nil {
		return nil
	}
	return c.dc.Image()
}
