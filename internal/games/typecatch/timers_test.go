package typecatch

import (
	"slices"
	"testing"
)

func TestTimersFireInDueOrder(t *testing.T) {
	var tm Timers
	var got []string
	tm.Schedule(KeySpawnNext, 0, 300, func(int64) { got = append(got, "spawn") })
	tm.ScheduleWall(KeyClearMessage, 0, 100, func(int64) { got = append(got, "clear") })
	tm.ScheduleWall(KeyClearSpecial, 0, 100, func(int64) { got = append(got, "special") })

	if n := tm.FireDue(99, true); n != 0 {
		t.Fatalf("fired %d actions before any was due", n)
	}
	if n := tm.FireDue(300, true); n != 3 {
		t.Fatalf("fired %d actions, want 3", n)
	}
	want := []string{"clear", "special", "spawn"}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if tm.Len() != 0 {
		t.Errorf("%d actions left pending", tm.Len())
	}
}

func TestTimersSupersede(t *testing.T) {
	var tm Timers
	var got []int
	tm.Schedule(KeySpawnNext, 0, 100, func(int64) { got = append(got, 1) })
	tm.Schedule(KeySpawnNext, 0, 200, func(int64) { got = append(got, 2) })

	if tm.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tm.Len())
	}
	tm.FireDue(150, true)
	if len(got) != 0 {
		t.Fatalf("superseded action ran: %v", got)
	}
	tm.FireDue(200, true)
	if !slices.Equal(got, []int{2}) {
		t.Errorf("got %v, want [2]", got)
	}
}

func TestTimersGameTimeFreezes(t *testing.T) {
	var tm Timers
	fired := 0
	tm.Schedule(KeySpawnNext, 0, 100, func(int64) { fired++ })

	tm.FireDue(500, false)
	if fired != 0 {
		t.Fatal("game-time action fired while frozen")
	}
	tm.Shift(400)
	if due, _ := tm.Pending(KeySpawnNext); due != 500 {
		t.Errorf("due after shift = %d, want 500", due)
	}
	tm.FireDue(499, true)
	if fired != 0 {
		t.Fatal("fired before shifted due time")
	}
	tm.FireDue(500, true)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestTimersWallIgnoresShift(t *testing.T) {
	var tm Timers
	fired := false
	tm.ScheduleWall(KeyTransitionEnd, 0, 3000, func(int64) { fired = true })
	tm.Shift(1000)
	if due, _ := tm.Pending(KeyTransitionEnd); due != 3000 {
		t.Errorf("wall due moved to %d", due)
	}
	tm.FireDue(3000, false)
	if !fired {
		t.Error("wall action did not fire while game time was frozen")
	}
}

func TestTimersRescheduleWaitsForNextPoll(t *testing.T) {
	var tm Timers
	runs := 0
	var tick func(now int64)
	tick = func(now int64) {
		runs++
		tm.ScheduleWall(KeyJiggle, now, 0, tick)
	}
	tm.ScheduleWall(KeyJiggle, 0, 0, tick)

	tm.FireDue(10, true)
	if runs != 1 {
		t.Fatalf("runs = %d after one poll, want 1", runs)
	}
	tm.FireDue(20, true)
	if runs != 2 {
		t.Errorf("runs = %d after two polls, want 2", runs)
	}
}

func TestTimersCancelFromAction(t *testing.T) {
	var tm Timers
	ran := false
	tm.ScheduleWall(KeyClearMessage, 0, 10, func(int64) { tm.Cancel(KeySpawnNext) })
	tm.Schedule(KeySpawnNext, 0, 10, func(int64) { ran = true })

	tm.FireDue(10, true)
	if ran {
		t.Error("action cancelled earlier in the same poll still ran")
	}
}
