package marquee

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Default configuration values. Every Config field has a total default so
// that a partial update is always merged over a complete configuration.
const (
	DefaultFont     = "16px sans-serif"
	DefaultColor    = "#000000"
	DefaultPaddingY = 36.0
	DefaultSpeed    = 2.0
)

// Config is the complete engine configuration. It is immutable once
// applied: updates replace the whole value via [Engine.UpdateConfiguration].
type Config struct {
	// Text is the string to scroll. Callers conventionally pre-format the
	// raw phrase with [FormatPhrase]; the engine scrolls Text verbatim.
	Text string

	// Font is a CSS-style font shorthand, e.g. "16px sans-serif" or
	// "bold 24px Go Regular".
	Font string

	// TextColor is a CSS-style color: "#RGB", "#RRGGBB", "#RRGGBBAA" or a
	// named color such as "rebeccapurple".
	TextColor string

	// BackgroundColor fills the surface before each redraw. Empty means
	// transparent.
	BackgroundColor string

	// Reverse flips the scroll direction (motion to the left instead of
	// to the right).
	Reverse bool

	// PaddingX is the horizontal gap between adjacent text instances, in
	// logical pixels. Negative values clamp to 0.
	PaddingX float64

	// PaddingY is the vertical padding added to the measured text height,
	// in logical pixels. Negative values clamp to 0.
	PaddingY float64

	// Speed is the per-frame advance in logical pixels. Values <= 0 fall
	// back to DefaultSpeed.
	Speed float64
}

// Option configures an engine. A partial configuration update is a list of
// options applied over the previous complete configuration; the empty list
// is the identity.
type Option func(*Config)

// WithText sets the scrolled text.
func WithText(text string) Option {
	return func(c *Config) { c.Text = text }
}

// WithFont sets the CSS-style font shorthand.
func WithFont(font string) Option {
	return func(c *Config) { c.Font = font }
}

// WithTextColor sets the text color.
func WithTextColor(col string) Option {
	return func(c *Config) { c.TextColor = col }
}

// WithBackgroundColor sets the background fill color. Empty restores the
// transparent default.
func WithBackgroundColor(col string) Option {
	return func(c *Config) { c.BackgroundColor = col }
}

// WithReverse sets the scroll direction flag.
func WithReverse(reverse bool) Option {
	return func(c *Config) { c.Reverse = reverse }
}

// WithPaddingX sets the horizontal inter-instance padding in pixels.
func WithPaddingX(px float64) Option {
	return func(c *Config) { c.PaddingX = px }
}

// WithPaddingY sets the vertical padding in pixels.
func WithPaddingY(px float64) Option {
	return func(c *Config) { c.PaddingY = px }
}

// WithSpeed sets the per-frame advance in pixels.
func WithSpeed(speed float64) Option {
	return func(c *Config) { c.Speed = speed }
}

// defaultConfig returns the total default configuration.
func defaultConfig() Config {
	return Config{
		Font:      DefaultFont,
		TextColor: DefaultColor,
		PaddingY:  DefaultPaddingY,
		Speed:     DefaultSpeed,
	}
}

// apply merges opts over c and returns the normalized result. c itself is
// left untouched.
func (c Config) apply(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c.normalize()
}

// normalize clamps fields to their valid ranges.
func (c Config) normalize() Config {
	if c.PaddingX < 0 {
		c.PaddingX = 0
	}
	if c.PaddingY < 0 {
		c.PaddingY = 0
	}
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.Font == "" {
		c.Font = DefaultFont
	}
	if c.TextColor == "" {
		c.TextColor = DefaultColor
	}
	return c
}

// direction returns the signed per-frame advance.
func (c Config) direction() float64 {
	if c.Reverse {
		return -c.Speed
	}
	return c.Speed
}

// parseColor resolves a CSS-style color string to a gg color. Hex values
// ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA") and x/image/colornames names
// are recognized.
func parseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
			for i := 0; i < len(hex); i++ {
				if !isHexDigit(hex[i]) {
					return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
				}
			}
			return gg.Hex(s), nil
		default:
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
