package input

import "time"

// MaxKeys bounds the number of simultaneously tracked pressed keys.
const MaxKeys = 16

// Key is a physical key code. The modifier keys are a contiguous sub-range
// so isModifier is a single comparison.
type Key int

const (
	KeyUnknown Key = iota
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
	// keys below this line are never modifiers.
	KeyFirstNonModifier
)

func isModifier(k Key) bool { return k >= KeyShiftLeft && k < KeyFirstNonModifier }

func modBit(k Key) Mods {
	switch k {
	case KeyShiftLeft, KeyShiftRight:
		return ModShift
	case KeyControlLeft, KeyControlRight:
		return ModControl
	case KeyAltLeft, KeyAltRight:
		return ModAlt
	case KeySuperLeft, KeySuperRight:
		return ModSuper
	default:
		return 0
	}
}

// KeyboardState is the activity state of the keyboard (spec §3).
type KeyboardState int

const (
	KeyboardInactive KeyboardState = iota
	KeyboardActive
	KeyboardCaptured
)

// KeyEventType tags the events emitted by the keyboard state machine.
type KeyEventType int

const (
	EventKeyPress KeyEventType = iota
	EventKeyRelease
	EventKeyRepeat
)

// KeyEvent describes a key press, release or repeat. Keyboard.Repeat returns
// one; Press and Release return nothing, and callers build those events
// themselves from the key and Keyboard.Mods.
type KeyEvent struct {
	Type Key
	Kind KeyEventType
	Mods Mods
}

// Keyboard is the keyboard key-set and modifier tracker of spec §4.7.
type Keyboard struct {
	keys      [MaxKeys]Key
	keyCount  int
	Mods      Mods
	PressTime time.Time
	State     KeyboardState
}

// Press records a key-down. Modifier keys are OR-ed into Mods instead of
// occupying a key-set slot. A non-modifier key already held, or a full
// key-set, is a no-op (the transition guard of spec §4.7).
func (k *Keyboard) Press(key Key, now time.Time) {
	if isModifier(key) {
		k.Mods |= modBit(key)
		return
	}
	for i := 0; i < k.keyCount; i++ {
		if k.keys[i] == key {
			return
		}
	}
	if k.keyCount >= MaxKeys {
		return
	}
	k.keys[k.keyCount] = key
	k.keyCount++
	k.PressTime = now
	k.State = KeyboardActive
}

// Release records a key-up, shifting the tail of the key-set left to fill
// the gap. If the set becomes empty, State reverts to Inactive.
func (k *Keyboard) Release(key Key) {
	if isModifier(key) {
		k.Mods &^= modBit(key)
		return
	}
	for i := 0; i < k.keyCount; i++ {
		if k.keys[i] == key {
			copy(k.keys[i:], k.keys[i+1:k.keyCount])
			k.keyCount--
			break
		}
	}
	if k.keyCount == 0 {
		k.State = KeyboardInactive
	}
}

// Pressed reports whether key is currently held.
func (k *Keyboard) Pressed(key Key) bool {
	for i := 0; i < k.keyCount; i++ {
		if k.keys[i] == key {
			return true
		}
	}
	return false
}

// PressedKeys returns a copy of the currently pressed, non-modifier keys.
func (k *Keyboard) PressedKeys() []Key {
	out := make([]Key, k.keyCount)
	copy(out, k.keys[:k.keyCount])
	return out
}

// Repeat is not a state transition; it only emits a repeat notification for
// an already-pressed key.
func (k *Keyboard) Repeat(key Key) KeyEvent {
	return KeyEvent{Type: key, Kind: EventKeyRepeat, Mods: k.Mods}
}
