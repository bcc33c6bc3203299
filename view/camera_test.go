package view

import "testing"

func TestCameraUpdateChasesTarget(t *testing.T) {
	c := NewCamera(Vec3{0, 0, 0}, Vec3{10, 0, 0}, Vec3{0, 1, 0})
	for i := 0; i < 200; i++ {
		c.Update()
	}
	if !almostEqual(c.Eye.X, 10, 1e-3) {
		t.Fatalf("eye did not converge to target, eye=%v", c.Eye)
	}
}

func TestCameraUpdateNeverOvershoots(t *testing.T) {
	c := NewCamera(Vec3{0, 0, 0}, Vec3{10, 0, 0}, Vec3{0, 1, 0})
	for i := 0; i < 5; i++ {
		c.Update()
		if c.Eye.X > c.Target.X {
			t.Fatalf("eye overshot target on step %d: eye.X=%v target.X=%v", i, c.Eye.X, c.Target.X)
		}
	}
}

func TestCameraLookClampsPitch(t *testing.T) {
	c := NewCamera(Vec3{0, 0, 0}, Vec3{0, 0, -1}, Vec3{0, 1, 0})
	c.Look(0, 10) // far beyond vertical
	if c.Pitch > maxPitch+1e-9 {
		t.Fatalf("pitch = %v, want clamped to <= %v", c.Pitch, maxPitch)
	}
}

func TestCameraMoveForwardAdvancesTarget(t *testing.T) {
	c := NewCamera(Vec3{0, 0, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	before := c.Target
	c.Move(1, 0, 0)
	if c.Target == before {
		t.Fatalf("forward move did not change target")
	}
}

func TestCameraViewMatrixLooksAlongForward(t *testing.T) {
	c := NewCamera(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	m := c.ViewMatrix()
	// looking down -Z with no yaw/pitch: row 2 (forward, negated) should be
	// approximately (0,0,1).
	if !almostEqual(m[2][2], 1, 1e-6) {
		t.Fatalf("view matrix forward row = %v, want Z~1", m[2])
	}
}
