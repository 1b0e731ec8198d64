package assets

import (
	"testing"

	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	cat := &registry.Catalog{
		Tiers: []registry.Tier{{Name: "Meadow", Start: 0, End: 2, Background: "meadow", Music: "meadow"}},
		Creatures: []registry.Descriptor{
			{ID: 1, Name: "SPROUTLE", Color: "green", Art: "plant", Pitch: 330, Voiced: true,
				Localized: map[string]string{"ko": "새싹이"}},
			{ID: 2, Name: "PEBBLO", Color: "gray", Art: "nope", Pitch: 0},
		},
	}
	if err := cat.Validate(); err != nil {
		t.Fatal(err)
	}
	return NewLibrary(cat, "")
}

func TestHandlesResolve(t *testing.T) {
	lib := testLibrary(t)

	r, c, ok := lib.Glyph(lib.IconFor(1))
	if !ok || r != 'S' || c != core.ColorBrightGreen {
		t.Errorf("Glyph(icon:1) = %q %v %v", r, c, ok)
	}

	art, ok := lib.Art(lib.SpriteFor(1))
	if !ok || len(art.Lines) == 0 || art.Width() == 0 {
		t.Fatalf("Art(sprite:1) = %+v, %v", art, ok)
	}

	// Unknown art kinds fall back to the blob sprite.
	if art, ok := lib.Art(lib.SpriteFor(2)); !ok || art.Lines[1] != sprites["blob"][1] {
		t.Errorf("fallback art = %+v", art)
	}

	bd, ok := lib.Backdrop(lib.BackgroundFor(1))
	if !ok || bd.Decoration != "새싹이" {
		t.Errorf("creature backdrop = %+v, %v", bd, ok)
	}
	scene, ok := lib.Backdrop(lib.SceneFor("meadow"))
	if !ok || scene.Pattern != ',' {
		t.Errorf("scene = %+v", scene)
	}
	if s, _ := lib.Backdrop(lib.SceneFor("nowhere")); s.Pattern != scenes["default"].Pattern {
		t.Errorf("unknown scene should use the default backdrop")
	}
}

func TestMissingHandlesFail(t *testing.T) {
	lib := testLibrary(t)

	for _, h := range []core.Handle{core.None, "icon:99", "sprite:x", "garbage", "cue:fanfare"} {
		if _, _, ok := lib.Glyph(h); ok {
			t.Errorf("Glyph(%q) should fail", h)
		}
		if _, ok := lib.Tone(h); ok {
			t.Errorf("Tone(%q) should fail", h)
		}
	}
}

func TestNameSoundIsOptional(t *testing.T) {
	lib := testLibrary(t)

	h, ok := lib.NameSoundFor(1)
	if !ok {
		t.Fatal("voiced creature should have a name sound")
	}
	tone, ok := lib.Tone(h)
	if !ok || len(tone.Notes) != len("SPROUTLE") {
		t.Errorf("name tone has %d notes", len(tone.Notes))
	}

	if _, ok := lib.NameSoundFor(2); ok {
		t.Error("unvoiced creature should not have a name sound")
	}
	if _, ok := lib.NameSoundFor(99); ok {
		t.Error("unknown creature should not have a name sound")
	}
}

func TestTones(t *testing.T) {
	lib := testLibrary(t)

	cry, ok := lib.Tone(lib.CrySoundFor(2))
	if !ok || cry.Notes[0].Freq != 440 {
		t.Errorf("zero pitch should default to 440 Hz, got %+v", cry)
	}

	m, ok := lib.Tone(lib.MusicFor("river"))
	if !ok || !m.Loop || m.Duration() <= 0 {
		t.Errorf("music should loop with positive length: %+v", m)
	}

	for _, h := range []core.Handle{lib.CatchCue(), lib.MissCue()} {
		if tone, ok := lib.Tone(h); !ok || tone.Loop {
			t.Errorf("cue %q should resolve and not loop", h)
		}
	}
	if lib.Describe(lib.IconFor(1)) != "icon(SPROUTLE)" {
		t.Errorf("Describe = %q", lib.Describe(lib.IconFor(1)))
	}
}
