package marquee

// minContainerWidth is the clientWidth a plain ancestor must exceed to be
// accepted as the sizing container during resolution.
const minContainerWidth = 300.0

// Element is a node in the layout ancestry the canvas sits in. It mirrors
// the box-model quantities the engine needs for width resolution and
// nothing else.
type Element struct {
	// Parent is the next element up the ancestor chain, nil at the root.
	Parent *Element

	// Marker flags an element explicitly designated as the marquee
	// container; resolution stops at it regardless of width.
	Marker bool

	// ClientWidth is the element's client width in logical pixels,
	// including padding, excluding border.
	ClientWidth float64

	// Horizontal box-model insets subtracted from ClientWidth to obtain
	// the content width.
	PaddingLeft, PaddingRight float64
	BorderLeft, BorderRight   float64
}

// ContentWidth returns the content-box width, floored at zero.
func (e *Element) ContentWidth() float64 {
	w := e.ClientWidth - e.PaddingLeft - e.PaddingRight - e.BorderLeft - e.BorderRight
	if w < 0 {
		return 0
	}
	return w
}

// resolveContainer walks up the ancestor chain from start until it finds
// an element carrying the container marker or whose client width exceeds
// minContainerWidth. If none qualifies it falls back to the chain's root.
// Returns nil only for a nil start.
func resolveContainer(start *Element) *Element {
	var last *Element
	for el := start; el != nil; el = el.Parent {
		if el.Marker || el.ClientWidth > minContainerWidth {
			return el
		}
		last = el
	}
	return last
}
