package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/typecatch/internal/assets"
)

// oscillator generates a single note.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     assets.Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave assets.Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq <= 0:
			val = 0
		case o.wave == assets.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case o.wave == assets.WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case o.wave == assets.WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case o.wave == assets.WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear attack and release to a note to avoid clicks.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, total, edge int) *fade {
	edge = min(edge, total/2)
	return &fade{streamer: s, attack: edge, release: edge, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if rem := f.total - f.position; rem < f.release {
			vol = float64(rem) / float64(f.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// looper rebuilds its source each time it runs dry.
type looper struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func (l *looper) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.build()
		}
		m, more := l.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			l.cur = nil
			if m == 0 && n == 0 {
				return 0, false
			}
		}
	}
	return n, true
}

func (l *looper) Err() error { return nil }

// Render turns a tone into a streamer at the given sample rate.
// Looping tones never end.
func Render(t assets.Tone, rate beep.SampleRate) beep.Streamer {
	phrase := func() beep.Streamer {
		notes := make([]beep.Streamer, 0, len(t.Notes))
		for _, n := range t.Notes {
			total := rate.N(n.Dur)
			notes = append(notes, newFade(newOscillator(n.Freq, n.Dur, t.Wave, rate), total, rate.N(5*time.Millisecond)))
		}
		return beep.Seq(notes...)
	}

	var s beep.Streamer
	if t.Loop {
		s = &looper{build: phrase}
	} else {
		s = phrase()
	}
	return volume(s, t.Volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
