package input

import (
	"testing"
	"time"
)

func eventTypes(events []MouseEvent) []MouseEventType {
	out := make([]MouseEventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func assertTypes(t *testing.T, got []MouseEventType, want ...MouseEventType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v events, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestMouseClick(t *testing.T) {
	var m Mouse
	t0 := time.Unix(0, 0)

	var all []MouseEventType
	all = append(all, eventTypes(m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0))...)
	all = append(all, eventTypes(m.Release(ButtonLeft, [2]float64{2, 0}, 0, t0.Add(50*time.Millisecond)))...)

	assertTypes(t, all, EventMousePress, EventMouseRelease, EventMouseClick)
}

func TestMouseDoubleClick(t *testing.T) {
	// Scenario 4 from spec §8.
	var m Mouse
	t0 := time.Unix(0, 0)

	var all []MouseEventType
	all = append(all, eventTypes(m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0))...)
	all = append(all, eventTypes(m.Release(ButtonLeft, [2]float64{4, 0}, 0, t0.Add(50*time.Millisecond)))...)
	t1 := t0.Add(100 * time.Millisecond)
	all = append(all, eventTypes(m.Press(ButtonLeft, [2]float64{4, 0}, 0, t1))...)
	all = append(all, eventTypes(m.Release(ButtonLeft, [2]float64{5, 0}, 0, t1.Add(50*time.Millisecond)))...)

	assertTypes(t, all,
		EventMousePress, EventMouseRelease, EventMouseClick,
		EventMousePress, EventMouseRelease, EventMouseDoubleClick,
	)
}

func TestMouseDoubleClickRequiresWithinDelay(t *testing.T) {
	var m Mouse
	t0 := time.Unix(0, 0)

	m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0)
	m.Release(ButtonLeft, [2]float64{0, 0}, 0, t0.Add(10*time.Millisecond))

	late := t0.Add(10*time.Millisecond + DoubleClickMaxDelay + time.Millisecond)
	events := m.Press(ButtonLeft, [2]float64{0, 0}, 0, late)
	assertTypes(t, eventTypes(events), EventMousePress)
	if m.State != MousePress {
		t.Fatalf("state = %v, want MousePress (not a latched double-click candidate)", m.State)
	}
}

func TestMouseDrag(t *testing.T) {
	// Scenario 5 from spec §8.
	var m Mouse
	t0 := time.Unix(0, 0)

	var all []MouseEvent
	all = append(all, m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0)...)
	all = append(all, m.Move([2]float64{50, 0}, 0, t0.Add(100*time.Millisecond))...)
	all = append(all, m.Release(ButtonLeft, [2]float64{50, 0}, 0, t0.Add(200*time.Millisecond))...)

	assertTypes(t, eventTypes(all),
		EventMousePress, EventMouseDragStart, EventMouseDrag, EventMouseRelease, EventMouseDragStop,
	)

	for _, e := range all {
		if e.Type == EventMouseDrag || e.Type == EventMouseDragStart || e.Type == EventMouseDragStop {
			if e.PressPos != ([2]float64{0, 0}) {
				t.Fatalf("drag event PressPos = %v, want (0,0)", e.PressPos)
			}
		}
	}
}

func TestMouseSmallMoveStaysPressed(t *testing.T) {
	var m Mouse
	t0 := time.Unix(0, 0)
	m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0)
	events := m.Move([2]float64{1, 1}, 0, t0)
	if len(events) != 0 {
		t.Fatalf("small move under ClickMaxShift should emit nothing while pressed, got %v", events)
	}
	if m.State != MousePress {
		t.Fatalf("state = %v, want MousePress", m.State)
	}
}

func TestMouseWheelPreservesState(t *testing.T) {
	var m Mouse
	t0 := time.Unix(0, 0)
	m.Press(ButtonLeft, [2]float64{0, 0}, 0, t0)
	events := m.Wheel([2]float64{0, 1}, 0)
	assertTypes(t, eventTypes(events), EventMouseWheel)
	if m.State != MousePress {
		t.Fatalf("Wheel must not alter gesture state, got %v", m.State)
	}
}
