package marquee

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Size is a measured text extent in pixels.
type Size struct {
	W, H float64
}

// Metrics measures rendered text. Implementations are pure: same text and
// font in, same size out, no owned mutable state visible to callers.
//
// Measurement failure is transient by contract: the engine logs it and
// proceeds with whatever size was returned (a zero or fallback-face based
// best effort), never blocking initialization.
type Metrics interface {
	MeasureText(text string, spec FontSpec) (Size, error)
}

// FaceMetrics implements Metrics with freetype faces, independent of any
// drawing context. Families registered with RegisterFont measure with
// their own face; everything else measures with the embedded Go Regular.
type FaceMetrics struct {
	mu    sync.RWMutex
	fonts map[string]*truetype.Font // lower-cased family -> parsed font
}

// NewFaceMetrics creates a provider with only the embedded fallback face.
func NewFaceMetrics() *FaceMetrics {
	return &FaceMetrics{fonts: make(map[string]*truetype.Font)}
}

// RegisterFont parses TTF data and registers it for a family.
func (m *FaceMetrics) RegisterFont(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("marquee: parse font for %q: %w", family, err)
	}
	m.mu.Lock()
	m.fonts[strings.ToLower(family)] = f
	m.mu.Unlock()
	return nil
}

// MeasureText returns the pixel extent of text at the requested size. The
// height is the face line height (ascent + descent), not the per-string
// ink extent, matching what a canvas-style renderer reserves vertically.
func (m *FaceMetrics) MeasureText(text string, spec FontSpec) (Size, error) {
	f, err := m.fontFor(spec.Family)
	if err != nil {
		return Size{}, err
	}
	size := spec.SizePx
	if size <= 0 {
		size = defaultFontSize
	}
	// DPI 72 makes point size equal pixel size.
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()

	adv := font.MeasureString(face, text)
	met := face.Metrics()
	return Size{
		W: fixedToFloat(adv),
		H: fixedToFloat(met.Ascent) + fixedToFloat(met.Descent),
	}, nil
}

func (m *FaceMetrics) fontFor(family string) (*truetype.Font, error) {
	m.mu.RLock()
	f, ok := m.fonts[strings.ToLower(family)]
	m.mu.RUnlock()
	if ok {
		return f, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[fallbackFamily]; ok {
		return f, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("marquee: embedded fallback font: %w", err)
	}
	m.fonts[fallbackFamily] = f
	return f, nil
}

// fallbackFamily keys the lazily parsed embedded face in FaceMetrics.
const fallbackFamily = "\x00goregular"

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
