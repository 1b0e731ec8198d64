package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ToneSource resolves sound handles. assets.Library implements it.
type ToneSource interface {
	Tone(h core.Handle) (assets.Tone, bool)
}

// Synth renders tones through the system speaker.
// All methods are safe for concurrent use.
type Synth struct {
	mu          sync.Mutex
	src         ToneSource
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       core.Handle
	initialized bool
}

// NewSynth creates a synth. Call Init before use.
func NewSynth(src ToneSource, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synth{
		src:    src,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

var _ Output = (*Synth)(nil)

// Init opens the speaker and starts the mixer.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.music = nil
	s.track = core.None
	s.initialized = false
}

// Play mixes a one-shot sound in.
func (s *Synth) Play(h core.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone, ok := s.src.Tone(h)
	if !ok {
		s.logger.Debug("no tone for handle", "handle", h)
		return
	}
	tone.Loop = false
	st := Render(tone, sampleRate)

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// PlayMusic replaces the background track.
func (s *Synth) PlayMusic(h core.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || (h == s.track && s.music != nil) {
		return
	}
	tone, ok := s.src.Tone(h)
	if !ok {
		s.logger.Debug("no music for handle", "handle", h)
		return
	}

	speaker.Lock()
	if s.music != nil {
		// A Ctrl without a streamer reports done and the mixer drops it.
		s.music.Paused = true
		s.music.Streamer = nil
	}
	s.music = &beep.Ctrl{Streamer: Render(tone, sampleRate)}
	s.mixer.Add(s.music)
	speaker.Unlock()
	s.track = h
}

func (s *Synth) PauseMusic()  { s.setPaused(true) }
func (s *Synth) ResumeMusic() { s.setPaused(false) }

func (s *Synth) setPaused(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = p
	speaker.Unlock()
}

// StopMusic ends the background track.
func (s *Synth) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	s.music.Streamer = nil
	speaker.Unlock()
	s.music = nil
	s.track = core.None
}
