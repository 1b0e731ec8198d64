package assets

import (
	"math"
	"strconv"
	"time"
	"unicode"

	"github.com/vovakirdan/typecatch/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Note is one pitch held for a duration. Freq 0 is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Tone is a short synthesized phrase.
type Tone struct {
	Wave   Wave
	Notes  []Note
	Volume float64 // 0..1
	Loop   bool
}

// Duration returns the length of one pass through the phrase.
func (t Tone) Duration() time.Duration {
	var d time.Duration
	for _, n := range t.Notes {
		d += n.Dur
	}
	return d
}

// semitone returns base shifted by n equal-tempered semitones.
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

var cues = map[string]Tone{
	"catch": {
		Wave:   WaveTriangle,
		Volume: 0.5,
		Notes: []Note{
			{523.25, 70 * time.Millisecond},
			{659.25, 70 * time.Millisecond},
			{783.99, 70 * time.Millisecond},
			{1046.5, 160 * time.Millisecond},
		},
	},
	"miss": {
		Wave:   WaveSaw,
		Volume: 0.35,
		Notes: []Note{
			{392.0, 90 * time.Millisecond},
			{311.13, 90 * time.Millisecond},
			{261.63, 200 * time.Millisecond},
		},
	},
}

// musicRoots gives each tier track its own key.
var musicRoots = map[string]float64{
	"meadow":  261.63,
	"river":   293.66,
	"ridge":   220.0,
	"citadel": 329.63,
}

var pentatonic = []int{0, 2, 4, 7, 9, 7, 4, 2, 0, 4, 7, 12, 9, 7, 4, 0}

// Tone resolves a sound handle to a playable phrase.
func (l *Library) Tone(h core.Handle) (Tone, bool) {
	kind, key, ok := split(h)
	if !ok {
		return Tone{}, false
	}
	switch kind {
	case kindCue:
		t, ok := cues[key]
		return t, ok
	case kindMusic:
		return music(key), true
	case kindCry:
		d, ok := l.creature(h, kindCry)
		if !ok {
			return Tone{}, false
		}
		return cry(d.Pitch), true
	case kindName:
		d, ok := l.creature(h, kindName)
		if !ok || !d.Voiced {
			return Tone{}, false
		}
		return spoken(d.Name), true
	}
	return Tone{}, false
}

func music(key string) Tone {
	root, ok := musicRoots[key]
	if !ok {
		root = 246.94
	}
	notes := make([]Note, 0, len(pentatonic)*2)
	for i, step := range pentatonic {
		notes = append(notes, Note{semitone(root, step), 220 * time.Millisecond})
		if i%4 == 3 {
			notes = append(notes, Note{0, 110 * time.Millisecond})
		}
	}
	return Tone{Wave: WaveSine, Notes: notes, Volume: 0.18, Loop: true}
}

func cry(pitch float64) Tone {
	if pitch <= 0 {
		pitch = 440
	}
	return Tone{
		Wave:   WaveSquare,
		Volume: 0.3,
		Notes: []Note{
			{pitch, 80 * time.Millisecond},
			{pitch * 1.25, 60 * time.Millisecond},
			{pitch * 0.9, 120 * time.Millisecond},
		},
	}
}

// spoken turns a name into one short blip per letter.
func spoken(name string) Tone {
	notes := make([]Note, 0, len(name))
	for _, r := range name {
		if !unicode.IsLetter(r) {
			notes = append(notes, Note{0, 40 * time.Millisecond})
			continue
		}
		step := int(unicode.ToUpper(r)-'A') % 12
		notes = append(notes, Note{semitone(220, step), 55 * time.Millisecond})
	}
	return Tone{Wave: WaveSine, Notes: notes, Volume: 0.4}
}

// String is used in logs.
func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveSaw:
		return "saw"
	}
	return "wave(" + strconv.Itoa(int(w)) + ")"
}
