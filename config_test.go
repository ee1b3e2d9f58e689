package marquee

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()

	if c.Font != DefaultFont {
		t.Errorf("Font = %q, want %q", c.Font, DefaultFont)
	}
	if c.TextColor != DefaultColor {
		t.Errorf("TextColor = %q, want %q", c.TextColor, DefaultColor)
	}
	if c.PaddingY != DefaultPaddingY {
		t.Errorf("PaddingY = %v, want %v", c.PaddingY, DefaultPaddingY)
	}
	if c.Speed != DefaultSpeed {
		t.Errorf("Speed = %v, want %v", c.Speed, DefaultSpeed)
	}
	if c.Reverse || c.PaddingX != 0 || c.Text != "" || c.BackgroundColor != "" {
		t.Errorf("unexpected non-zero defaults: %+v", c)
	}
}

func TestConfigApplyMergesOverComplete(t *testing.T) {
	base := defaultConfig().apply(WithText("hello"), WithSpeed(5))

	// A partial update touches only what it names.
	next := base.apply(WithPaddingX(20))

	if next.Text != "hello" || next.Speed != 5 {
		t.Errorf("previous fields lost: %+v", next)
	}
	if next.PaddingX != 20 {
		t.Errorf("PaddingX = %v, want 20", next.PaddingX)
	}
	// The original is untouched.
	if base.PaddingX != 0 {
		t.Errorf("apply mutated receiver: %+v", base)
	}
}

func TestConfigApplyEmptyIsIdentity(t *testing.T) {
	base := defaultConfig().apply(WithText("x"), WithReverse(true), WithPaddingY(10))
	if got := base.apply(); got != base {
		t.Errorf("empty apply changed config: %+v != %+v", got, base)
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want func(Config) bool
	}{
		{"negative paddingX clamps", []Option{WithPaddingX(-5)},
			func(c Config) bool { return c.PaddingX == 0 }},
		{"negative paddingY clamps", []Option{WithPaddingY(-1)},
			func(c Config) bool { return c.PaddingY == 0 }},
		{"zero speed falls back", []Option{WithSpeed(0)},
			func(c Config) bool { return c.Speed == DefaultSpeed }},
		{"negative speed falls back", []Option{WithSpeed(-3)},
			func(c Config) bool { return c.Speed == DefaultSpeed }},
		{"empty font falls back", []Option{WithFont("")},
			func(c Config) bool { return c.Font == DefaultFont }},
		{"empty color falls back", []Option{WithTextColor("")},
			func(c Config) bool { return c.TextColor == DefaultColor }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultConfig().apply(tt.opts...)
			if !tt.want(got) {
				t.Errorf("normalize: %+v", got)
			}
		})
	}
}

func TestConfigDirection(t *testing.T) {
	fwd := defaultConfig().apply(WithSpeed(3))
	if fwd.direction() != 3 {
		t.Errorf("forward direction = %v, want 3", fwd.direction())
	}
	rev := fwd.apply(WithReverse(true))
	if rev.direction() != -3 {
		t.Errorf("reverse direction = %v, want -3", rev.direction())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"short hex", "#fff", false},
		{"long hex", "#1a2b3c", false},
		{"hex with alpha", "#1a2b3c80", false},
		{"named", "rebeccapurple", false},
		{"named mixed case", "Tomato", false},
		{"bad hex digits", "#zzz", true},
		{"bad hex length", "#12345", true},
		{"unknown name", "notacolor", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownColor) {
				t.Errorf("error not ErrUnknownColor: %v", err)
			}
		})
	}
}

func TestParseColorValues(t *testing.T) {
	c, err := parseColor("#ff0000")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if c.R < 0.99 || c.G > 0.01 || c.B > 0.01 {
		t.Errorf("#ff0000 parsed as %+v", c)
	}

	white, err := parseColor("white")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if white.R < 0.99 || white.G < 0.99 || white.B < 0.99 {
		t.Errorf("white parsed as %+v", white)
	}
}
