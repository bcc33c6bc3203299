package input

import (
	"time"

	"github.com/dvzkit/dvz/clock"
)

// Timer is a periodic tick source (spec §4.8, §3). Tick k is expected at
// StartTime + After + (k-StartTick)*Period; Advance reports every tick whose expected
// time has passed since the last Advance, with drift (the delta between
// now and the tick's expected time) carried in the emitted event so a
// consumer can correct for catch-up.
type Timer struct {
	ID        uint32
	After     time.Duration
	Period    time.Duration
	MaxCount  uint64
	StartTime time.Time
	StartTick uint64
	Tick      uint64
	Running   bool
}

// TimerEvent is emitted once per expected tick.
type TimerEvent struct {
	ID    uint32
	Now   time.Time
	Tick  uint64
	Drift time.Duration // now - expected tick time
}

// expectedAt returns the wall-clock time tick k is due.
func (t *Timer) expectedAt(tick uint64) time.Time {
	offset := t.After + time.Duration(tick-t.StartTick)*t.Period
	return t.StartTime.Add(offset)
}

// Advance emits every tick whose expected time is <= now, advancing Tick
// past them. It is a no-op for a non-running, uncreated, or exhausted
// (MaxCount reached) timer.
func (t *Timer) Advance(now time.Time) []TimerEvent {
	if !t.Running {
		return nil
	}
	var events []TimerEvent
	for {
		if t.MaxCount != 0 && t.Tick >= t.MaxCount {
			break
		}
		expected := t.expectedAt(t.Tick)
		if now.Before(expected) {
			break
		}
		events = append(events, TimerEvent{ID: t.ID, Now: now, Tick: t.Tick, Drift: now.Sub(expected)})
		t.Tick++
	}
	return events
}

// Pause stops emitting ticks without resetting Tick.
func (t *Timer) Pause() { t.Running = false }

// Resume restarts the timer from the current moment, snapshotting
// StartTick/StartTime so no burst of catch-up ticks fires for the time
// spent paused (spec §4.8).
func (t *Timer) Resume(now time.Time) {
	t.StartTime = now
	t.StartTick = t.Tick
	t.Running = true
}

// TimerSet is the container of timers driven by a fifo.Proc's wait
// callback (spec §4.8: advance every 1ms while the async input queue
// blocks). It aggregates the clock.Clock the spec's Canvas also carries
// (spec §3): Tick advances that shared clock first, then every timer
// against the resulting Current() time.
type TimerSet struct {
	clk    *clock.Clock
	timers map[uint32]*Timer
	nextID uint32
}

// NewTimerSet creates an empty timer set with its own running clock.
func NewTimerSet() *TimerSet {
	return &TimerSet{clk: clock.New(), timers: make(map[uint32]*Timer)}
}

// Create registers a new timer starting now, running immediately.
func (s *TimerSet) Create(after, period time.Duration, maxCount uint64) *Timer {
	s.nextID++
	now := s.clk.Current()
	t := &Timer{ID: s.nextID, After: after, Period: period, MaxCount: maxCount, StartTime: now, Running: true}
	s.timers[t.ID] = t
	return t
}

// Remove unregisters a timer.
func (s *TimerSet) Remove(id uint32) { delete(s.timers, id) }

// Advance advances every registered timer against the given instant and
// returns the concatenated events in timer-creation order.
func (s *TimerSet) Advance(now time.Time) []TimerEvent {
	var all []TimerEvent
	for id := uint32(1); id <= s.nextID; id++ {
		t, ok := s.timers[id]
		if !ok {
			continue
		}
		all = append(all, t.Advance(now)...)
	}
	return all
}

// Tick advances the set's own clock (spec §4.8 step "advance the clock")
// and then every timer against the clock's new Current() time. This is the
// method a proc's 1ms wait callback calls; Advance remains available
// directly for tests and callers that drive timers against an explicit
// instant instead.
func (s *TimerSet) Tick() []TimerEvent {
	s.clk.Tick()
	return s.Advance(s.clk.Current())
}
