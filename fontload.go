package marquee

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/cache"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSpec is a parsed CSS-style font shorthand.
type FontSpec struct {
	// Style carries the leading style/weight keywords ("bold", "italic"),
	// space-joined, possibly empty. The engine does not interpret them;
	// they participate in logging only.
	Style string

	// SizePx is the font size in pixels.
	SizePx float64

	// Family is the font family name, e.g. "Go Regular" or "sans-serif".
	Family string
}

// defaultFontSize is used when a shorthand carries no parsable size.
const defaultFontSize = 16.0

// ParseFontSpec parses a shorthand such as "16px sans-serif" or
// "bold 24px Go Regular". The size token must end in "px"; everything
// after it is the family, everything before it is kept as Style.
func ParseFontSpec(shorthand string) (FontSpec, error) {
	fields := strings.Fields(shorthand)
	for i, f := range fields {
		if !strings.HasSuffix(f, "px") {
			continue
		}
		size, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || size <= 0 {
			continue
		}
		return FontSpec{
			Style:  strings.Join(fields[:i], " "),
			SizePx: size,
			Family: strings.Join(fields[i+1:], " "),
		}, nil
	}
	return FontSpec{SizePx: defaultFontSize, Family: strings.Join(fields, " ")},
		fmt.Errorf("%w: %q", ErrBadFontShorthand, shorthand)
}

// genericFamilies are CSS generic family names that resolve straight to
// the embedded fallback face.
var genericFamilies = map[string]bool{
	"":           true,
	"sans-serif": true,
	"serif":      true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
	"system-ui":  true,
}

// fallbackKey is the cache key of the embedded fallback font source.
const fallbackKey = "goregular|embedded"

// FontLoader resolves font families to gg font sources, memoizing the
// expensive load behind an explicit key→result cache.
//
// Cache keys are derived deterministically from the call arguments: the
// lower-cased family name, a '|' separator, and the source file path (the
// literal "embedded" for the built-in fallback). Invalidate and
// InvalidateAll expose explicit cache control.
//
// Families without a registered file, and the CSS generic families, load
// the embedded Go Regular face. A file that fails to load is a transient
// failure: it is logged and the fallback is returned, so initialization
// proceeds with best-effort metrics rather than blocking.
type FontLoader struct {
	mu    sync.RWMutex
	paths map[string]string // lower-cased family -> font file path

	cache *cache.ShardedCache[string, *text.FontSource]
}

// NewFontLoader creates an empty loader.
func NewFontLoader() *FontLoader {
	return &FontLoader{
		paths: make(map[string]string),
		cache: cache.NewSharded[string, *text.FontSource](32, cache.StringHasher),
	}
}

// RegisterFile parses the TTF/OTF file at path and registers it under its
// declared family name plus any extra aliases. It returns the declared
// family. The file is parsed once here for validation; the gg font source
// is built lazily on first Load.
func (l *FontLoader) RegisterFile(path string, aliases ...string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("marquee: read font %s: %w", path, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("marquee: parse font %s: %w", path, err)
	}
	family := face.Font.Describe().Family

	l.mu.Lock()
	if family != "" {
		l.paths[strings.ToLower(family)] = path
	}
	for _, alias := range aliases {
		if alias != "" {
			l.paths[strings.ToLower(alias)] = path
		}
	}
	l.mu.Unlock()
	return family, nil
}

// Load returns the font source for a family, loading and caching it on
// first use. Load never fails: unresolvable or broken families fall back
// to the embedded face with a warning.
func (l *FontLoader) Load(family string) *text.FontSource {
	key, path := l.keyFor(family)
	if src, ok := l.cache.Get(key); ok {
		return src
	}
	if key == fallbackKey {
		return l.loadFallback()
	}

	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		Logger().Warn("marquee: font load failed, using fallback",
			"family", family, "path", path, "error", err)
		return l.loadFallback()
	}
	l.cache.Set(key, src)
	return src
}

// Face resolves a parsed font spec to a sized face.
func (l *FontLoader) Face(spec FontSpec) text.Face {
	return l.Load(spec.Family).Face(spec.SizePx)
}

// Invalidate drops the cached source for one family. The next Load
// re-reads the font file.
func (l *FontLoader) Invalidate(family string) {
	key, _ := l.keyFor(family)
	l.cache.Delete(key)
}

// InvalidateAll drops every cached source.
func (l *FontLoader) InvalidateAll() {
	l.cache.Clear()
}

// keyFor derives the cache key and source path for a family.
func (l *FontLoader) keyFor(family string) (key, path string) {
	lower := strings.ToLower(strings.TrimSpace(family))
	if genericFamilies[lower] {
		return fallbackKey, ""
	}
	l.mu.RLock()
	path, ok := l.paths[lower]
	l.mu.RUnlock()
	if !ok {
		return fallbackKey, ""
	}
	return lower + "|" + path, path
}

func (l *FontLoader) loadFallback() *text.FontSource {
	return l.cache.GetOrCreate(fallbackKey, func() *text.FontSource {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known-good; reaching this means memory
			// corruption rather than a caller mistake.
			panic(fmt.Sprintf("marquee: embedded fallback font: %v", err))
		}
		return src
	})
}
