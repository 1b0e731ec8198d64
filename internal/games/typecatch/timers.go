package typecatch

// TimerKey names the purpose of a deferred action. At most one action per
// key is pending; scheduling a key again replaces the earlier action.
type TimerKey string

const (
	KeySpawnNext     TimerKey = "spawn-next"
	KeyClearMessage  TimerKey = "clear-message"
	KeyClearSpecial  TimerKey = "clear-special"
	KeyTransitionEnd TimerKey = "transition-end"
	KeyJiggle        TimerKey = "jiggle"
	KeyWalk          TimerKey = "walk"
)

type timer struct {
	key  TimerKey
	due  int64
	wall bool
	seq  uint64
	fn   func(now int64)
}

// Timers is a keyed list of deferred actions polled once per frame.
//
// Game-time entries are frozen while the session is paused: they do not
// fire, and Shift pushes them back by the paused interval on resume.
// Wall entries fire on the raw clock regardless of pauses.
type Timers struct {
	entries []timer
	seq     uint64
}

// Schedule runs fn delay ms after now, in game time.
func (t *Timers) Schedule(key TimerKey, now, delay int64, fn func(now int64)) {
	t.add(timer{key: key, due: now + delay, fn: fn})
}

// ScheduleWall runs fn delay ms after now on the wall clock.
func (t *Timers) ScheduleWall(key TimerKey, now, delay int64, fn func(now int64)) {
	t.add(timer{key: key, due: now + delay, wall: true, fn: fn})
}

func (t *Timers) add(e timer) {
	t.Cancel(e.key)
	t.seq++
	e.seq = t.seq
	t.entries = append(t.entries, e)
}

// Cancel drops the pending action for key, if any.
func (t *Timers) Cancel(key TimerKey) {
	for i, e := range t.entries {
		if e.key == key {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Pending reports the due time of the action for key.
func (t *Timers) Pending(key TimerKey) (int64, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.due, true
		}
	}
	return 0, false
}

// Len returns the number of pending actions.
func (t *Timers) Len() int {
	return len(t.entries)
}

// Shift delays every game-time action by delta ms.
func (t *Timers) Shift(delta int64) {
	for i := range t.entries {
		if !t.entries[i].wall {
			t.entries[i].due += delta
		}
	}
}

// Clear drops every pending action.
func (t *Timers) Clear() {
	t.entries = t.entries[:0]
}

// FireDue runs every action due at or before now, earliest first, ties in
// scheduling order. With gameTime false only wall actions are considered.
// Each action is removed before it runs, so it may reschedule its own key;
// actions scheduled during this call wait for the next one.
func (t *Timers) FireDue(now int64, gameTime bool) int {
	horizon := t.seq
	fired := 0
	for {
		idx := -1
		for i, e := range t.entries {
			if e.seq > horizon || e.due > now || !(e.wall || gameTime) {
				continue
			}
			if idx < 0 || e.due < t.entries[idx].due ||
				(e.due == t.entries[idx].due && e.seq < t.entries[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			return fired
		}
		e := t.entries[idx]
		t.entries = append(t.entries[:idx], t.entries[idx+1:]...)
		e.fn(now)
		fired++
	}
}
