package marquee

import "errors"

// Sentinel errors for the marquee package.
var (
	// ErrNoContext is returned when no drawable context can be obtained
	// from the canvas. This is a non-recoverable setup failure: the engine
	// stays in a no-animation state and the error propagates to the caller.
	ErrNoContext = errors.New("marquee: no drawable context")

	// ErrUnknownColor is returned for a color string that is neither a hex
	// value nor a recognized named color.
	ErrUnknownColor = errors.New("marquee: unknown color")

	// ErrBadFontShorthand is returned when a font shorthand carries no
	// parsable pixel size.
	ErrBadFontShorthand = errors.New("marquee: bad font shorthand")
)
