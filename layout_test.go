package marquee

import "testing"

func TestElementContentWidth(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want float64
	}{
		{"bare", Element{ClientWidth: 500}, 500},
		{"padding", Element{ClientWidth: 500, PaddingLeft: 10, PaddingRight: 20}, 470},
		{"padding and border", Element{ClientWidth: 500, PaddingLeft: 10,
			PaddingRight: 10, BorderLeft: 2, BorderRight: 2}, 476},
		{"insets exceed width", Element{ClientWidth: 10, PaddingLeft: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.ContentWidth(); got != tt.want {
				t.Errorf("ContentWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveContainer(t *testing.T) {
	t.Run("marker wins regardless of width", func(t *testing.T) {
		marked := &Element{Marker: true, ClientWidth: 50}
		start := &Element{Parent: marked, ClientWidth: 40}
		if got := resolveContainer(start); got != marked {
			t.Errorf("resolveContainer = %+v, want the marked ancestor", got)
		}
	})

	t.Run("width threshold", func(t *testing.T) {
		wide := &Element{ClientWidth: 301}
		narrow := &Element{Parent: wide, ClientWidth: 100}
		if got := resolveContainer(narrow); got != wide {
			t.Errorf("resolveContainer = %+v, want the wide ancestor", got)
		}
	})

	t.Run("exactly at threshold does not qualify", func(t *testing.T) {
		root := &Element{ClientWidth: 200}
		at := &Element{Parent: root, ClientWidth: minContainerWidth}
		if got := resolveContainer(at); got != root {
			t.Errorf("resolveContainer = %+v, want the root fallback", got)
		}
	})

	t.Run("falls back to document root", func(t *testing.T) {
		root := &Element{ClientWidth: 100}
		mid := &Element{Parent: root, ClientWidth: 100}
		leaf := &Element{Parent: mid, ClientWidth: 100}
		if got := resolveContainer(leaf); got != root {
			t.Errorf("resolveContainer = %+v, want the root", got)
		}
	})

	t.Run("nearest qualifying ancestor wins", func(t *testing.T) {
		far := &Element{ClientWidth: 800}
		near := &Element{Parent: far, ClientWidth: 400}
		leaf := &Element{Parent: near, ClientWidth: 10}
		if got := resolveContainer(leaf); got != near {
			t.Errorf("resolveContainer = %+v, want the nearest qualifying ancestor", got)
		}
	})

	t.Run("nil start", func(t *testing.T) {
		if got := resolveContainer(nil); got != nil {
			t.Errorf("resolveContainer(nil) = %+v, want nil", got)
		}
	})
}
