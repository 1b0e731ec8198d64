// Package audio plays the cues, cries and tier music referenced by asset
// handles. Output is the surface the game engine talks to; Synth renders
// tones through the speaker and Null swallows everything.
package audio

import "github.com/vovakirdan/typecatch/internal/core"

// Output receives audio commands keyed by asset handle.
// Unknown or empty handles are ignored.
type Output interface {
	// Play starts a one-shot sound. Overlapping sounds mix.
	Play(h core.Handle)

	// PlayMusic swaps the background track. Playing the current track again
	// is a no-op.
	PlayMusic(h core.Handle)

	PauseMusic()
	ResumeMusic()
	StopMusic()
}

// Null is an Output that does nothing. Used for muted play and SSH sessions.
type Null struct{}

func (Null) Play(core.Handle)      {}
func (Null) PlayMusic(core.Handle) {}
func (Null) PauseMusic()           {}
func (Null) ResumeMusic()          {}
func (Null) StopMusic()            {}

// Event is one command captured by a Recorder.
type Event struct {
	Op     string
	Handle core.Handle
}

// Recorder is an Output that remembers every command, for tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Play(h core.Handle)      { r.Events = append(r.Events, Event{"play", h}) }
func (r *Recorder) PlayMusic(h core.Handle) { r.Events = append(r.Events, Event{"music", h}) }
func (r *Recorder) PauseMusic()             { r.Events = append(r.Events, Event{Op: "pause"}) }
func (r *Recorder) ResumeMusic()            { r.Events = append(r.Events, Event{Op: "resume"}) }
func (r *Recorder) StopMusic()              { r.Events = append(r.Events, Event{Op: "stop"}) }

// Count returns how many events match op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, e := range r.Events {
		if e.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent event with the given op.
func (r *Recorder) Last(op string) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Op == op {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
