package marquee

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
)

// Engine owns one marquee surface: its geometry, the measured text, the
// instance tiling and the frame cycle. One engine per canvas; the engine
// is the sole writer of all of it.
//
// Init, Resize and UpdateConfiguration are not serialized against each
// other; callers that can overlap them must serialize externally (last
// write wins, errors logged). Start, Stop and Destroy are safe from any
// goroutine.
type Engine struct {
	mu sync.Mutex

	canvas  *Canvas
	cfg     Config
	sched   FrameScheduler
	owned   *TickerScheduler // set when the engine created sched itself
	metrics Metrics
	fonts   *FontLoader

	dc *gg.Context // held from Init to Destroy

	// Surface state, re-derived wholesale on every setup.
	scale      float64
	logicalW   float64
	logicalH   float64
	physicalW  int
	physicalH  int
	textW      float64
	textH      float64
	tileW      float64
	textColor  gg.RGBA
	background gg.RGBA
	hasBG      bool

	instances []*Instance

	frame       FrameRequest // 0 = no frame scheduled
	gen         uint64       // bumped by stopLocked; stale callbacks bail
	initialized bool
	destroyed   bool
}

// NewEngine creates an engine bound to a canvas with opts merged over the
// complete defaults. The engine does nothing until Init.
func NewEngine(canvas *Canvas, opts ...Option) *Engine {
	return &Engine{
		canvas:  canvas,
		cfg:     defaultConfig().apply(opts...),
		metrics: NewFaceMetrics(),
		fonts:   NewFontLoader(),
	}
}

// SetScheduler replaces the frame scheduler. Call before Init; afterwards
// it is ignored. When not set, Init creates a TickerScheduler at
// DefaultFrameInterval and Destroy closes it.
func (e *Engine) SetScheduler(s FrameScheduler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized || e.destroyed || s == nil {
		return
	}
	e.sched = s
}

// SetMetrics replaces the text metrics provider. Call before Init.
func (e *Engine) SetMetrics(m Metrics) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized || e.destroyed || m == nil {
		return
	}
	e.metrics = m
}

// SetFontLoader replaces the font loader, letting several engines share
// one memoized loader. Call before Init.
func (e *Engine) SetFontLoader(l *FontLoader) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized || e.destroyed || l == nil {
		return
	}
	e.fonts = l
}

// Config returns the current complete configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Init performs the full surface setup, builds the initial tiling and
// starts the frame cycle. It fails only when no drawable context can be
// obtained from the canvas; that failure is non-recoverable for this
// engine and propagates to the caller. Init on an initialized or
// destroyed engine is a no-op.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized || e.destroyed {
		return nil
	}
	dc, err := e.canvas.Context()
	if err != nil {
		return err
	}
	e.dc = dc
	if err := e.setupLocked(); err != nil {
		e.dc = nil
		return err
	}
	// Created only after setup succeeded: a failed Init must not leave a
	// dispatch goroutine behind.
	if e.sched == nil {
		e.owned = NewTickerScheduler(DefaultFrameInterval)
		e.sched = e.owned
	}
	e.initialized = true
	e.startLocked()
	return nil
}

// Resize repeats the full surface setup and re-tiling after an external
// size or pixel-ratio change, preserving the running state around it: the
// frame cycle is stopped, geometry re-derived, and the cycle restarted.
// Stopping for the duration of setup means no instance ever observes a
// stale scale or tile width. No-op before Init and after Destroy.
func (e *Engine) Resize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized || e.destroyed {
		return nil
	}
	e.stopLocked()
	if err := e.setupLocked(); err != nil {
		// Unrecoverable: stay stopped, propagate.
		return err
	}
	e.startLocked()
	return nil
}

// UpdateConfiguration merges opts over the current configuration. If the
// engine is initialized and the merge changed anything, the surface setup
// and tiling are repeated; unlike Resize the running frame cycle is left
// untouched and simply observes the new tiling on its next tick. The
// empty update is the identity: no state changes at all.
func (e *Engine) UpdateConfiguration(opts ...Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.cfg.apply(opts...)
	if next == e.cfg {
		return nil
	}
	e.cfg = next
	if !e.initialized || e.destroyed {
		return nil
	}
	return e.setupLocked()
}

// Start begins the frame cycle. No-op when a frame is already scheduled
// (the double-scheduling guard), before Init, and after Destroy.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized || e.destroyed {
		return
	}
	e.startLocked()
}

// Stop cancels the pending frame, freezing the marquee in place. No-op
// when already stopped.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

// Animating reports whether a frame is currently scheduled.
func (e *Engine) Animating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame != 0
}

// Destroy stops the cycle, drops the instances, releases the context and
// marks the engine terminal. Safe to call repeatedly; every other method
// is a silent no-op afterwards.
func (e *Engine) Destroy() {
	e.mu.Lock()
	e.stopLocked()
	e.instances = nil
	e.dc = nil
	e.initialized = false
	e.destroyed = true
	owned := e.owned
	e.owned = nil
	e.mu.Unlock()
	if owned != nil {
		owned.Close()
	}
}

func (e *Engine) startLocked() {
	if e.frame != 0 {
		return
	}
	e.scheduleLocked()
}

// scheduleLocked registers the next frame callback bound to the current
// cycle generation. A scheduler may have taken a request out of its queue
// before the callback runs, in which case Cancel is a no-op; the
// generation check in onFrame is what keeps such a callback from
// rescheduling after a Stop/Start pair and forking the cycle.
func (e *Engine) scheduleLocked() {
	gen := e.gen
	e.frame = e.sched.Schedule(func() { e.onFrame(gen) })
}

func (e *Engine) stopLocked() {
	if e.frame == 0 {
		return
	}
	e.sched.Cancel(e.frame)
	e.frame = 0
	e.gen++
}

// setupLocked re-derives the complete surface state from the current
// configuration and rebuilds the instance collection. The sequence is
// fixed: resolve logical size, size the physical buffer, reset and rescale
// the transform exactly once, style the context, re-measure with the
// configured context, re-tile.
func (e *Engine) setupLocked() error {
	dc := e.dc
	if dc == nil {
		return ErrNoContext
	}

	scale := e.canvas.Scale()
	logicalW := e.resolveLogicalWidth(dc, scale)

	spec, err := ParseFontSpec(e.cfg.Font)
	if err != nil {
		Logger().Warn("marquee: font shorthand not parsable, using fallback size",
			"font", e.cfg.Font, "error", err)
	}
	measured, err := e.metrics.MeasureText(e.cfg.Text, spec)
	if err != nil {
		// Transient: proceed with whatever the provider returned.
		Logger().Warn("marquee: text measurement failed",
			"text", e.cfg.Text, "error", err)
	}
	logicalH := math.Ceil(measured.H) + e.cfg.PaddingY
	if logicalH < 1 {
		logicalH = 1
	}

	physW := int(math.Ceil(logicalW * scale))
	if physW < 1 {
		physW = 1
	}
	physH := int(math.Ceil(logicalH * scale))
	if physH < 1 {
		physH = 1
	}
	if err := dc.Resize(physW, physH); err != nil {
		return fmt.Errorf("marquee: size surface to %dx%d: %w", physW, physH, err)
	}

	// Reset, then rescale. Never compound the scale across setups.
	dc.Identity()
	dc.Scale(scale, scale)

	dc.SetFont(e.fonts.Face(spec))
	e.textColor = e.resolveColor(e.cfg.TextColor, gg.Hex(DefaultColor))
	e.hasBG = e.cfg.BackgroundColor != ""
	if e.hasBG {
		bg, err := parseColor(e.cfg.BackgroundColor)
		if err != nil {
			Logger().Warn("marquee: background color ignored", "error", err)
			e.hasBG = false
		} else {
			e.background = bg
		}
	}

	// The configured context is authoritative for tiling geometry; the
	// provider measurement above only sized the surface vertically.
	textW, textH := dc.MeasureString(e.cfg.Text)

	e.scale = scale
	e.logicalW = logicalW
	e.logicalH = logicalH
	e.physicalW = physW
	e.physicalH = physH
	e.textW = textW
	e.textH = textH
	e.tileW = textW + e.cfg.PaddingX
	e.instances = tileInstances(logicalW, e.tileW, textW, e.cfg.Reverse)

	Logger().Debug("marquee: surface setup",
		"logicalW", logicalW, "logicalH", logicalH,
		"physicalW", physW, "physicalH", physH,
		"scale", scale, "tileW", e.tileW, "instances", len(e.instances))
	return nil
}

func (e *Engine) resolveColor(s string, fallback gg.RGBA) gg.RGBA {
	col, err := parseColor(s)
	if err != nil {
		Logger().Warn("marquee: text color ignored", "error", err)
		return fallback
	}
	return col
}

// resolveLogicalWidth finds the sizing container's content width, falling
// back to the context's own logical width for a detached canvas.
func (e *Engine) resolveLogicalWidth(dc *gg.Context, scale float64) float64 {
	if el := e.canvas.Element(); el != nil {
		if container := resolveContainer(el.Parent); container != nil {
			return container.ContentWidth()
		}
	}
	return float64(dc.Width()) / scale
}

// onFrame is the per-frame cycle. The next frame is scheduled before any
// work so a slow tick never stalls the cadence; exactly one logical frame
// is pending at all times while animating.
func (e *Engine) onFrame(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen || e.frame == 0 || !e.initialized || e.destroyed {
		// Stopped, restarted or destroyed between fire and lock
		// acquisition; only the current generation may continue the cycle.
		return
	}
	e.scheduleLocked()
	if e.canvas.Paused() {
		return
	}
	e.tickLocked()
}

// tickLocked advances, recycles and redraws. A panic inside one tick is
// recovered and logged; the cycle stays alive for the next tick.
func (e *Engine) tickLocked() {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("marquee: frame tick skipped", "panic", r)
		}
	}()
	e.advanceLocked()
	e.drawLocked()
}

// advanceLocked moves every instance by the signed speed and recycles the
// ones that scrolled fully out of view. The reference instance (leftmost
// or rightmost) is recomputed fresh for each recycled instance, so even
// several recycles in one tick keep the tiling monotonically ordered.
func (e *Engine) advanceLocked() {
	delta := e.cfg.direction()
	for _, in := range e.instances {
		in.Pos += delta
	}
	if e.tileW <= 0 {
		return
	}
	if e.cfg.Reverse {
		for _, in := range e.instances {
			if in.Pos+in.Width < 0 {
				in.Pos = rightmost(e.instances).Pos + e.tileW
			}
		}
		return
	}
	for _, in := range e.instances {
		if in.Pos > e.logicalW {
			in.Pos = leftmost(e.instances).Pos - e.tileW
		}
	}
}

// drawLocked clears the full drawable area and redraws only the instances
// whose extent intersects the visible logical width. Culling is explicit:
// an instance is drawn while pos+width > 0 and pos < logicalW, so an
// instance sitting exactly on the right boundary is already invisible.
func (e *Engine) drawLocked() {
	dc := e.dc
	if e.hasBG {
		dc.ClearWithColor(e.background)
	} else {
		dc.ClearWithColor(gg.RGBA{})
	}
	dc.SetColor(e.textColor.Color())
	baseline := e.logicalH / 2
	for _, in := range e.instances {
		if in.visible(e.logicalW) {
			dc.DrawStringAnchored(e.cfg.Text, in.Pos, baseline, 0, 0.5)
		}
	}
}

// Snapshot is a diagnostic copy of the engine's surface and instance
// state, in the order the instances were created.
type Snapshot struct {
	Initialized bool
	Destroyed   bool
	Animating   bool

	Scale                float64
	LogicalW, LogicalH   float64
	PhysicalW, PhysicalH int
	TextW, TextH         float64
	TileW                float64

	Positions []float64
}

// Snapshot returns the current state for diagnostics and tests.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Snapshot{
		Initialized: e.initialized,
		Destroyed:   e.destroyed,
		Animating:   e.frame != 0,
		Scale:       e.scale,
		LogicalW:    e.logicalW,
		LogicalH:    e.logicalH,
		PhysicalW:   e.physicalW,
		PhysicalH:   e.physicalH,
		TextW:       e.textW,
		TextH:       e.textH,
		TileW:       e.tileW,
	}
	s.Positions = make([]float64, len(e.instances))
	for i, in := range e.instances {
		s.Positions[i] = in.Pos
	}
	return s
}
