package input

import (
	"testing"
	"time"
)

func TestKeyboardPressReleaseActivity(t *testing.T) {
	var k Keyboard
	if k.State != KeyboardInactive {
		t.Fatalf("zero-value keyboard state = %v, want Inactive", k.State)
	}

	k.Press(KeyFirstNonModifier, timeZero())
	if k.State != KeyboardActive {
		t.Fatalf("state after Press = %v, want Active", k.State)
	}
	if !k.Pressed(KeyFirstNonModifier) {
		t.Fatalf("key should be pressed")
	}

	k.Release(KeyFirstNonModifier)
	if k.State != KeyboardInactive {
		t.Fatalf("state after releasing last key = %v, want Inactive", k.State)
	}
}

func TestKeyboardModifiersDoNotOccupySlots(t *testing.T) {
	var k Keyboard
	k.Press(KeyShiftLeft, timeZero())
	if k.keyCount != 0 {
		t.Fatalf("modifier press should not occupy a key-set slot, keyCount=%d", k.keyCount)
	}
	if k.Mods&ModShift == 0 {
		t.Fatalf("ModShift bit should be set")
	}
	k.Release(KeyShiftLeft)
	if k.Mods&ModShift != 0 {
		t.Fatalf("ModShift bit should be cleared")
	}
}

func TestKeyboardMaxKeysBound(t *testing.T) {
	var k Keyboard
	for i := 0; i < MaxKeys+5; i++ {
		k.Press(Key(int(KeyFirstNonModifier)+i), timeZero())
	}
	if k.keyCount > MaxKeys {
		t.Fatalf("keyCount = %d, must be <= MaxKeys (%d)", k.keyCount, MaxKeys)
	}
}

func TestKeyboardReleaseShiftsTail(t *testing.T) {
	var k Keyboard
	a, b, c := KeyFirstNonModifier, KeyFirstNonModifier+1, KeyFirstNonModifier+2
	k.Press(a, timeZero())
	k.Press(b, timeZero())
	k.Press(c, timeZero())

	k.Release(b)

	if k.Pressed(b) {
		t.Fatalf("released key should no longer be pressed")
	}
	if !k.Pressed(a) || !k.Pressed(c) {
		t.Fatalf("releasing the middle key must not drop its neighbors")
	}
	if k.keyCount != 2 {
		t.Fatalf("keyCount = %d, want 2", k.keyCount)
	}
}

func TestKeyboardRepeatIsNotATransition(t *testing.T) {
	var k Keyboard
	k.Press(KeyFirstNonModifier, timeZero())
	before := k.keyCount
	ev := k.Repeat(KeyFirstNonModifier)
	if ev.Kind != EventKeyRepeat {
		t.Fatalf("Repeat() kind = %v, want EventKeyRepeat", ev.Kind)
	}
	if k.keyCount != before {
		t.Fatalf("Repeat must not alter the key-set, keyCount changed from %d to %d", before, k.keyCount)
	}
}

func timeZero() time.Time { return time.Unix(0, 0) }
