package marquee

import "math"

// overscanInstances is the fixed margin of extra copies beyond what the
// visible width needs, so recycling never opens a visible gap at any
// practical speed.
const overscanInstances = 4

// Instance is one positioned copy of the text within the tiling. Pos is
// mutated in place every frame; Width is fixed at tiling time; Index is
// diagnostic only and takes no part in placement after creation.
type Instance struct {
	Pos   float64
	Width float64
	Index int
}

// tileInstances builds a fresh collection covering logicalW with period
// tileW. Forward tilings seed one tile left of the origin so the leading
// copy scrolls in without a gap; reverse tilings seed from the right
// boundary outward for the same reason in the opposite direction.
func tileInstances(logicalW, tileW, textW float64, reverse bool) []*Instance {
	if tileW <= 0 {
		return nil
	}
	n := int(math.Ceil(logicalW/tileW)) + overscanInstances
	out := make([]*Instance, n)
	for i := range out {
		pos := float64(i)*tileW - tileW
		if reverse {
			pos = logicalW + float64(i)*tileW
		}
		out[i] = &Instance{Pos: pos, Width: textW, Index: i}
	}
	return out
}

// visible reports whether the instance's extent intersects the visible
// logical width. The right boundary is exclusive: an instance sitting
// exactly at logicalW is already off-screen.
func (in *Instance) visible(logicalW float64) bool {
	return in.Pos+in.Width > 0 && in.Pos < logicalW
}

// leftmost returns the instance with the smallest position.
func leftmost(list []*Instance) *Instance {
	var min *Instance
	for _, in := range list {
		if min == nil || in.Pos < min.Pos {
			min = in
		}
	}
	return min
}

// rightmost returns the instance with the largest position.
func rightmost(list []*Instance) *Instance {
	var max *Instance
	for _, in := range list {
		if max == nil || in.Pos > max.Pos {
			max = in
		}
	}
	return max
}
