// Package input implements the mouse and keyboard gesture state machines
// (spec §4.6-4.7) and the periodic input-timer set (spec §4.8). Each state
// machine is driven by a handful of explicit inputs and emits a stream of
// typed events; the shape mirrors the guard-clause transition style of a
// resource-usage tracker (each transition an explicit state check plus a
// guard), adapted here to pointer-input gestures rather than GPU resource
// hazards.
package input

import "time"

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Mods is a bitmask of modifier keys, folding left/right variants together.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseState is the discrete state of the mouse gesture state machine.
type MouseState int

const (
	MouseRelease MouseState = iota
	MousePress
	MouseClick
	MouseClickPress
	MouseDoubleClick
	MouseDragging
)

// MouseEventType tags the events emitted by the mouse state machine.
type MouseEventType int

const (
	EventMousePress MouseEventType = iota
	EventMouseRelease
	EventMouseMove
	EventMouseWheel
	EventMouseDragStart
	EventMouseDrag
	EventMouseDragStop
	EventMouseClick
	EventMouseDoubleClick
)

// MouseEvent is emitted by Mouse.Press/Release/Move/Wheel.
type MouseEvent struct {
	Type     MouseEventType
	Button   Button
	Pos      [2]float64
	PressPos [2]float64 // origin of the gesture, valid for drag events
	WheelDir [2]float64
	Mods     Mods
}

// Tuning constants from spec §4.6.
const (
	ClickMaxDelay       = 250 * time.Millisecond
	ClickMaxShift       = 5.0 // pixels
	DoubleClickMaxDelay = 200 * time.Millisecond
)

// never is the press-time sentinel meaning "no active press".
var never = time.Time{}

// Mouse is the mouse gesture state machine of spec §4.6. Zero value is
// ready to use.
type Mouse struct {
	Button        Button
	PressPos      [2]float64
	CurPos        [2]float64
	LastPos       [2]float64
	PressTime     time.Time
	LastClickTime time.Time
	LastMoveTime  time.Time
	State         MouseState
	WheelDelta    [2]float64
	Mods          Mods
}

func dist(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy // compared against ClickMaxShift^2, see withinShift
}

func withinShift(a, b [2]float64) bool {
	return dist(a, b) <= ClickMaxShift*ClickMaxShift
}

// Press processes a button-down input at time now and returns the events it
// produced.
func (m *Mouse) Press(button Button, pos [2]float64, mods Mods, now time.Time) []MouseEvent {
	m.Mods = mods
	m.CurPos = pos

	switch m.State {
	case MouseClick:
		if !m.LastClickTime.IsZero() && now.Sub(m.LastClickTime) <= DoubleClickMaxDelay {
			m.State = MouseClickPress
		} else {
			m.State = MousePress
		}
	default:
		m.State = MousePress
	}

	m.Button = button
	m.PressPos = pos
	m.LastPos = pos
	m.PressTime = now

	return []MouseEvent{{Type: EventMousePress, Button: button, Pos: pos, Mods: mods}}
}

// Move processes a pointer-move input and returns the events it produced
// (possibly none, for a press that has not yet exceeded ClickMaxShift).
func (m *Mouse) Move(pos [2]float64, mods Mods, now time.Time) []MouseEvent {
	m.Mods = mods
	m.LastPos = m.CurPos
	m.CurPos = pos
	m.LastMoveTime = now

	switch m.State {
	case MousePress:
		if !withinShift(pos, m.PressPos) {
			m.State = MouseDragging
			return []MouseEvent{
				{Type: EventMouseDragStart, Button: m.Button, Pos: pos, PressPos: m.PressPos, Mods: mods},
				{Type: EventMouseDrag, Button: m.Button, Pos: pos, PressPos: m.PressPos, Mods: mods},
			}
		}
		return nil
	case MouseDragging:
		return []MouseEvent{{Type: EventMouseDrag, Button: m.Button, Pos: pos, PressPos: m.PressPos, Mods: mods}}
	default:
		return []MouseEvent{{Type: EventMouseMove, Button: m.Button, Pos: pos, Mods: mods}}
	}
}

// Release processes a button-up input and returns the events it produced.
func (m *Mouse) Release(button Button, pos [2]float64, mods Mods, now time.Time) []MouseEvent {
	m.Mods = mods
	m.CurPos = pos

	switch m.State {
	case MousePress:
		if now.Sub(m.PressTime) <= ClickMaxDelay && withinShift(pos, m.PressPos) {
			m.State = MouseClick
			m.LastClickTime = now
			m.Button = ButtonNone
			return []MouseEvent{
				{Type: EventMouseRelease, Button: button, Pos: pos, Mods: mods},
				{Type: EventMouseClick, Button: button, Pos: pos, PressPos: m.PressPos, Mods: mods},
			}
		}
		m.State = MouseRelease
		m.Button = ButtonNone
		return []MouseEvent{{Type: EventMouseRelease, Button: button, Pos: pos, Mods: mods}}

	case MouseDragging:
		m.State = MouseRelease
		m.Button = ButtonNone
		return []MouseEvent{
			{Type: EventMouseRelease, Button: button, Pos: pos, Mods: mods},
			{Type: EventMouseDragStop, Button: button, Pos: pos, PressPos: m.PressPos, Mods: mods},
		}

	case MouseClickPress:
		m.State = MouseRelease
		m.Button = ButtonNone
		return []MouseEvent{
			{Type: EventMouseRelease, Button: button, Pos: pos, Mods: mods},
			{Type: EventMouseDoubleClick, Button: button, Pos: pos, PressPos: m.PressPos, Mods: mods},
		}

	default:
		m.State = MouseRelease
		return []MouseEvent{{Type: EventMouseRelease, Button: button, Pos: pos, Mods: mods}}
	}
}

// Wheel processes a scroll input; it never changes State (the "any" row of
// the transition table in spec §4.6).
func (m *Mouse) Wheel(dir [2]float64, mods Mods) []MouseEvent {
	m.Mods = mods
	m.WheelDelta = dir
	return []MouseEvent{{Type: EventMouseWheel, WheelDir: dir, Mods: mods}}
}
