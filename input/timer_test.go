package input

import (
	"testing"
	"time"
)

func TestTimerAdvanceTicksOnSchedule(t *testing.T) {
	start := time.Unix(0, 0)
	tm := &Timer{After: 10 * time.Millisecond, Period: 100 * time.Millisecond, StartTime: start, Running: true}

	events := tm.Advance(start.Add(5 * time.Millisecond))
	if len(events) != 0 {
		t.Fatalf("before After elapses, expected no ticks, got %v", events)
	}

	events = tm.Advance(start.Add(250 * time.Millisecond))
	if len(events) != 3 {
		t.Fatalf("expected 3 ticks due by t=250ms (at 10ms, 110ms and 210ms), got %d: %v", len(events), events)
	}
	if events[0].Tick != 0 || events[1].Tick != 1 || events[2].Tick != 2 {
		t.Fatalf("tick sequence = %d,%d,%d; want 0,1,2", events[0].Tick, events[1].Tick, events[2].Tick)
	}
}

func TestTimerMaxCountStops(t *testing.T) {
	start := time.Unix(0, 0)
	tm := &Timer{Period: time.Millisecond, MaxCount: 2, StartTime: start, Running: true}
	events := tm.Advance(start.Add(time.Second))
	if len(events) != 2 {
		t.Fatalf("expected exactly MaxCount=2 ticks, got %d", len(events))
	}
}

func TestTimerPauseResumeAvoidsBurst(t *testing.T) {
	start := time.Unix(0, 0)
	tm := &Timer{Period: 10 * time.Millisecond, StartTime: start, Running: true}
	tm.Advance(start.Add(35 * time.Millisecond)) // ticks 0..3 due
	tm.Pause()

	resumeAt := start.Add(time.Hour)
	tm.Resume(resumeAt)

	events := tm.Advance(resumeAt.Add(5 * time.Millisecond))
	if len(events) != 1 || events[0].Tick != 4 {
		t.Fatalf("resume must not fire a burst of catch-up ticks: want only tick 4 (due at the resume instant), got %v", events)
	}
}

func TestTimerSetAdvanceAggregates(t *testing.T) {
	s := NewTimerSet()
	a := s.Create(0, time.Millisecond, 1)
	b := s.Create(0, time.Millisecond, 1)

	events := s.Advance(time.Now().Add(time.Second))
	if len(events) != 2 {
		t.Fatalf("expected one tick from each of 2 timers, got %d", len(events))
	}
	ids := map[uint32]bool{events[0].ID: true, events[1].ID: true}
	if !ids[a.ID] || !ids[b.ID] {
		t.Fatalf("expected events from both timer ids %d and %d, got %v", a.ID, b.ID, events)
	}
}
