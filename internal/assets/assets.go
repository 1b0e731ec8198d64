// Package assets maps catalog entries to the terminal presentation of a
// creature: its gallery glyph, its ASCII sprite, the backdrop behind it and
// the tones used for its cry and spoken name. Game logic only ever sees the
// opaque core.Handle values produced here.
package assets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

// Provider hands out handles for creatures and tiers.
type Provider interface {
	IconFor(id int) core.Handle
	SpriteFor(id int) core.Handle
	BackgroundFor(id int) core.Handle
	CrySoundFor(id int) core.Handle
	NameSoundFor(id int) (core.Handle, bool)
	SceneFor(key string) core.Handle
	MusicFor(key string) core.Handle
	CatchCue() core.Handle
	MissCue() core.Handle
}

// Handle kinds. A handle is "<kind>:<key>".
const (
	kindIcon     = "icon"
	kindSprite   = "sprite"
	kindBackdrop = "backdrop"
	kindScene    = "scene"
	kindCry      = "cry"
	kindName     = "name"
	kindMusic    = "music"
	kindCue      = "cue"
)

func handle(kind, key string) core.Handle {
	return core.Handle(kind + ":" + key)
}

func split(h core.Handle) (kind, key string, ok bool) {
	return strings.Cut(string(h), ":")
}

// Art is a multi-line ASCII sprite.
type Art struct {
	Lines []string
	Color core.Color
}

// Width returns the widest line in columns.
func (a Art) Width() int {
	w := 0
	for _, l := range a.Lines {
		w = max(w, core.TextWidth(l))
	}
	return w
}

// Backdrop describes what is painted behind the action.
// Decoration is optional text drawn large and dim, such as a localized name.
type Backdrop struct {
	Pattern    rune
	Color      core.Color
	Density    int // one pattern rune every Density cells
	Decoration string
}

// Library is the terminal implementation of Provider. It also resolves the
// handles it issued back to drawable and playable data.
type Library struct {
	catalog *registry.Catalog
	locale  string
}

// NewLibrary builds a library over a validated catalog.
// locale selects which localized name decorates creature backdrops.
func NewLibrary(cat *registry.Catalog, locale string) *Library {
	if locale == "" {
		locale = "ko"
	}
	return &Library{catalog: cat, locale: locale}
}

var _ Provider = (*Library)(nil)

func (l *Library) IconFor(id int) core.Handle       { return handle(kindIcon, strconv.Itoa(id)) }
func (l *Library) SpriteFor(id int) core.Handle     { return handle(kindSprite, strconv.Itoa(id)) }
func (l *Library) BackgroundFor(id int) core.Handle { return handle(kindBackdrop, strconv.Itoa(id)) }
func (l *Library) CrySoundFor(id int) core.Handle   { return handle(kindCry, strconv.Itoa(id)) }
func (l *Library) SceneFor(key string) core.Handle  { return handle(kindScene, key) }
func (l *Library) MusicFor(key string) core.Handle  { return handle(kindMusic, key) }
func (l *Library) CatchCue() core.Handle            { return handle(kindCue, "catch") }
func (l *Library) MissCue() core.Handle             { return handle(kindCue, "miss") }

// NameSoundFor returns the spoken-name cue. Not every creature has one.
func (l *Library) NameSoundFor(id int) (core.Handle, bool) {
	d, ok := l.catalog.Lookup(id)
	if !ok || !d.Voiced {
		return core.None, false
	}
	return handle(kindName, strconv.Itoa(id)), true
}

func (l *Library) creature(h core.Handle, want string) (registry.Descriptor, bool) {
	kind, key, ok := split(h)
	if !ok || kind != want {
		return registry.Descriptor{}, false
	}
	id, err := strconv.Atoi(key)
	if err != nil {
		return registry.Descriptor{}, false
	}
	return l.catalog.Lookup(id)
}

// Glyph resolves an icon handle to a single coloured rune.
func (l *Library) Glyph(h core.Handle) (rune, core.Color, bool) {
	d, ok := l.creature(h, kindIcon)
	if !ok {
		return 0, core.ColorDefault, false
	}
	r := []rune(d.Name)[0]
	return r, ColorByName(d.Color), true
}

// Art resolves a sprite handle. Icon handles resolve to a one-cell sprite.
func (l *Library) Art(h core.Handle) (Art, bool) {
	if r, c, ok := l.Glyph(h); ok {
		return Art{Lines: []string{string(r)}, Color: c}, true
	}
	d, ok := l.creature(h, kindSprite)
	if !ok {
		return Art{}, false
	}
	lines, ok := sprites[d.Art]
	if !ok {
		lines = sprites["blob"]
	}
	return Art{Lines: lines, Color: ColorByName(d.Color)}, true
}

// Backdrop resolves a creature backdrop or a tier scene.
func (l *Library) Backdrop(h core.Handle) (Backdrop, bool) {
	kind, key, ok := split(h)
	if !ok {
		return Backdrop{}, false
	}
	switch kind {
	case kindScene:
		b, ok := scenes[key]
		if !ok {
			b = scenes["default"]
		}
		return b, true
	case kindBackdrop:
		d, ok := l.creature(h, kindBackdrop)
		if !ok {
			return Backdrop{}, false
		}
		return Backdrop{Color: core.ColorDimGray, Decoration: d.Localized[l.locale]}, true
	}
	return Backdrop{}, false
}

// Describe returns a short human-readable label for a handle, for logs.
func (l *Library) Describe(h core.Handle) string {
	kind, key, ok := split(h)
	if !ok {
		return string(h)
	}
	if id, err := strconv.Atoi(key); err == nil {
		if d, found := l.catalog.Lookup(id); found {
			return fmt.Sprintf("%s(%s)", kind, d.Name)
		}
	}
	return fmt.Sprintf("%s(%s)", kind, key)
}

// ColorByName maps catalog colour names to screen colours.
func ColorByName(name string) core.Color {
	switch strings.ToLower(name) {
	case "red":
		return core.ColorBrightRed
	case "green":
		return core.ColorBrightGreen
	case "yellow":
		return core.ColorBrightYellow
	case "blue":
		return core.ColorBrightBlue
	case "magenta":
		return core.ColorBrightMagenta
	case "cyan":
		return core.ColorBrightCyan
	case "white":
		return core.ColorBrightWhite
	case "orange":
		return core.ColorOrange
	case "gray", "grey":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
