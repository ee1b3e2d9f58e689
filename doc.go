// Package marquee renders an infinitely scrolling line of text onto a 2D
// drawing surface.
//
// # Overview
//
// The engine keeps the illusion of continuous motion by tiling several
// copies of the text along the scroll axis and recycling each copy as it
// leaves the visible area. It owns the surface geometry (logical size,
// physical size, scale factor), the measured text metrics, the ordered set
// of text instances, and the per-frame update/draw cycle. Drawing happens
// through a gogpu/gg context.
//
// # Quick Start
//
//	dc := gg.NewContext(1000, 60)
//	cv := marquee.NewCanvas(dc)
//
//	eng := marquee.NewEngine(cv,
//	    marquee.WithText("  Hello, world  *"),
//	    marquee.WithFont("24px Go Regular"),
//	    marquee.WithTextColor("#222222"),
//	    marquee.WithSpeed(2),
//	)
//	if err := eng.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Destroy()
//
// Init sizes the surface, measures the text, tiles the instances and starts
// the frame cycle. The cycle runs on the engine's frame scheduler until
// Stop or Destroy is called. Setting the canvas pause flag (for example on
// pointer hover) freezes motion without losing positions:
//
//	cv.SetPaused(true)  // positions frozen
//	cv.SetPaused(false) // motion resumes from the frozen positions
//
// # Lifecycle
//
// An engine moves through three states: uninitialized, ready and destroyed.
// Resize and UpdateConfiguration re-derive the full surface geometry and
// rebuild the instance set; they never leave a frame double-scheduled.
// Start and Stop are idempotent. Destroy is terminal; every lifecycle
// method called before Init or after Destroy is a silent no-op, except a
// repeated Destroy which is explicitly allowed.
//
// # Concurrency
//
// Frame callbacks run sequentially on the scheduler's goroutine, so all
// surface mutation is cooperative and single-threaded. Init, Resize and
// UpdateConfiguration are not serialized against each other; callers that
// may overlap them must serialize externally (last write wins). Stop and
// Destroy are safe to call from any goroutine at any time.
//
// # Logging
//
// By default marquee produces no log output. Call [SetLogger] with a
// log/slog logger to enable diagnostics (per-setup geometry at Debug,
// transient font failures and skipped frame ticks at Warn).
package marquee
