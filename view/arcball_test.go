package view

import "testing"

func TestArcballIdentityMatrix(t *testing.T) {
	a := NewArcball()
	m := a.Matrix()
	want := Identity4()
	if m != want {
		t.Fatalf("fresh arcball matrix = %v, want identity", m)
	}
}

func TestArcballDragRotates(t *testing.T) {
	a := NewArcball()
	a.Drag(0, 0, 0.5, 0)
	if a.Rotation == QuatIdentity {
		t.Fatalf("drag did not change rotation")
	}
	n := a.Rotation.X*a.Rotation.X + a.Rotation.Y*a.Rotation.Y + a.Rotation.Z*a.Rotation.Z + a.Rotation.W*a.Rotation.W
	if !almostEqual(n, 1, 1e-9) {
		t.Fatalf("rotation not unit length, |q|^2 = %v", n)
	}
}

func TestArcballNoOpDragIsIdentity(t *testing.T) {
	a := NewArcball()
	a.Drag(0.3, 0.2, 0.3, 0.2)
	if !almostEqual(a.Rotation.W, 1, 1e-9) {
		t.Fatalf("zero-displacement drag should leave rotation near identity, got %v", a.Rotation)
	}
}

func TestArcballEndCommitsBaseForNextDrag(t *testing.T) {
	a := NewArcball()
	a.Drag(0, 0, 0.5, 0)
	a.End()
	afterFirst := a.Rotation

	a.Drag(0.5, 0, 0.5, 0) // zero displacement relative to new press point
	if afterFirst != a.Rotation {
		t.Fatalf("second drag with zero displacement should not change rotation: before=%v after=%v", afterFirst, a.Rotation)
	}
}

func TestArcballPanTranslates(t *testing.T) {
	a := NewArcball()
	a.Pan(Vec3{1, 2, 3})
	m := a.Matrix()
	if m[0][3] != 1 || m[1][3] != 2 || m[2][3] != 3 {
		t.Fatalf("pan did not set translation column, got %v", m)
	}
}

func TestArcballReset(t *testing.T) {
	a := NewArcball()
	a.Pan(Vec3{1, 1, 1})
	a.Drag(0, 0, 0.5, 0)
	a.End()
	a.Reset()

	if a.Matrix() != Identity4() {
		t.Fatalf("reset arcball matrix = %v, want identity", a.Matrix())
	}
}
