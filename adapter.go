package marquee

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attrs is a string-keyed attribute map, the narrow boundary a declarative
// host (markup attributes, CLI flags, config files) funnels through.
// Recognized keys: phrase, font, color, background, speed, reverse,
// padding-x, padding-y, uppercase. The adapter holds no animation logic;
// it only translates strings into typed configuration options.
type Attrs map[string]string

// Options translates the attribute map into configuration options with
// the same merge semantics as calling the With* options directly. Values
// that fail to parse are logged and skipped, never fatal: a bad attribute
// leaves the previous configuration field in place.
//
// The phrase attribute is pre-formatted with [FormatPhrase] using the
// map's own reverse and uppercase attributes, matching the convention all
// callers apply before handing text to the engine.
func (a Attrs) Options() []Option {
	var opts []Option

	reverse := false
	if raw, ok := a["reverse"]; ok {
		reverse = parseFlag(raw)
		opts = append(opts, WithReverse(reverse))
	}
	upper := false
	if raw, ok := a["uppercase"]; ok {
		upper = parseFlag(raw)
	}

	if phrase, ok := a["phrase"]; ok {
		opts = append(opts, WithText(FormatPhrase(phrase, reverse, upper)))
	}
	if font, ok := a["font"]; ok {
		opts = append(opts, WithFont(font))
	}
	if col, ok := a["color"]; ok {
		opts = append(opts, WithTextColor(col))
	}
	if col, ok := a["background"]; ok {
		opts = append(opts, WithBackgroundColor(col))
	}
	if raw, ok := a["speed"]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts = append(opts, WithSpeed(v))
		} else {
			Logger().Warn("marquee: attribute skipped", "attr", "speed", "value", raw)
		}
	}
	if raw, ok := a["padding-x"]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts = append(opts, WithPaddingX(v))
		} else {
			Logger().Warn("marquee: attribute skipped", "attr", "padding-x", "value", raw)
		}
	}
	if raw, ok := a["padding-y"]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts = append(opts, WithPaddingY(v))
		} else {
			Logger().Warn("marquee: attribute skipped", "attr", "padding-y", "value", raw)
		}
	}
	return opts
}

// Apply funnels the attribute map into an engine's configuration merge.
func (a Attrs) Apply(e *Engine) error {
	return e.UpdateConfiguration(a.Options()...)
}

// parseFlag reads a boolean attribute. A present-but-empty value counts
// as true, markup style.
func parseFlag(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

// upperCaser is locale-neutral; marquee phrases carry no language tag.
var upperCaser = cases.Upper(language.Und)

// FormatPhrase applies the text formatting convention all callers use
// before handing a phrase to the engine: two-space gutters around the
// phrase with a trailing "*" separator for forward motion, or a leading
// one for reverse motion, optionally upper-cased.
func FormatPhrase(phrase string, reverse, upper bool) string {
	if upper {
		phrase = upperCaser.String(phrase)
	}
	if reverse {
		return "*  " + phrase + "  "
	}
	return "  " + phrase + "  *"
}
