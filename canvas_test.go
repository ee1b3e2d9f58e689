package marquee

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestCanvasContext(t *testing.T) {
	dc := gg.NewContext(100, 50)
	defer func() { _ = dc.Close() }()

	cv := NewCanvas(dc)
	got, err := cv.Context()
	if err != nil || got != dc {
		t.Fatalf("Context() = %v, %v", got, err)
	}
}

func TestCanvasContextUnavailable(t *testing.T) {
	cv := NewCanvas(nil)
	if _, err := cv.Context(); !errors.Is(err, ErrNoContext) {
		t.Errorf("Context() error = %v, want ErrNoContext", err)
	}

	var nilCanvas *Canvas
	if _, err := nilCanvas.Context(); !errors.Is(err, ErrNoContext) {
		t.Errorf("nil canvas Context() error = %v, want ErrNoContext", err)
	}
}

func TestCanvasScale(t *testing.T) {
	tests := []struct {
		name string
		fn   func() float64
		want float64
	}{
		{"default provider", nil, 1},
		{"integral", func() float64 { return 2 }, 2},
		{"rounded to 2 decimals", func() float64 { return 1.256 }, 1.26},
		{"rounded down", func() float64 { return 1.254 }, 1.25},
		{"zero clamps to 1", func() float64 { return 0 }, 1},
		{"negative clamps to 1", func() float64 { return -2 }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []CanvasOption
			if tt.fn != nil {
				opts = append(opts, WithScaleProvider(tt.fn))
			}
			cv := NewCanvas(nil, opts...)
			if got := cv.Scale(); got != tt.want {
				t.Errorf("Scale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasPauseSignal(t *testing.T) {
	cv := NewCanvas(nil)
	if cv.Paused() {
		t.Fatal("new canvas should not be paused")
	}
	cv.SetPaused(true)
	if !cv.Paused() {
		t.Fatal("SetPaused(true) not observed")
	}
	cv.SetPaused(false)
	if cv.Paused() {
		t.Fatal("SetPaused(false) not observed")
	}
}

func TestCanvasElement(t *testing.T) {
	el := &Element{ClientWidth: 640}
	cv := NewCanvas(nil, WithElement(el))
	if cv.Element() != el {
		t.Error("Element() did not return the configured element")
	}
}

func TestCanvasImage(t *testing.T) {
	dc := gg.NewContext(20, 10)
	defer func() { _ = dc.Close() }()

	cv := NewCanvas(dc)
	img := cv.Image()
	if img == nil {
		t.Fatal("Image() returned nil for a live context")
	}
	b := img.Bounds()
	if b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("image bounds = %v", b)
	}

	if NewCanvas(nil).Image() != nil {
		t.Error("Image() on a detached canvas should be nil")
	}
}
