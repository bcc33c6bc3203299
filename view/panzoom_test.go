package view

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestPanzoomResetIsIdentity(t *testing.T) {
	pz := NewPanzoom(800, 600)
	if pz.Pan != (Vec2{0, 0}) || pz.Zoom != (Vec2{1, 1}) {
		t.Fatalf("fresh panzoom = pan %v zoom %v, want pan (0,0) zoom (1,1)", pz.Pan, pz.Zoom)
	}
}

// TestPanzoomPanRoundTrip verifies spec §8 scenario 2: a pan drag from A to
// B then back to A restores the original pan offset.
func TestPanzoomPanRoundTrip(t *testing.T) {
	pz := NewPanzoom(800, 600)
	pz.PanShift(Vec2{100, 50})
	pz.End()
	mid := pz.Pan

	pz.PanShift(Vec2{-100, -50})
	pz.End()

	if !almostEqual(pz.Pan.X, 0, 1e-9) || !almostEqual(pz.Pan.Y, 0, 1e-9) {
		t.Fatalf("pan round trip = %v, want back to (0,0) (mid was %v)", pz.Pan, mid)
	}
}

// TestPanzoomZoomAboutCursorIsInvariant verifies spec §8 scenario 3's
// testable property: the NDC image of the cursor point is unchanged by a
// zoom-about-cursor drag.
func TestPanzoomZoomAboutCursorIsInvariant(t *testing.T) {
	pz := NewPanzoom(800, 600)
	cursor := Vec2{500, 200}

	// MVP() maps world to NDC as ndc = zoom*(world+pan), so the world point
	// under an NDC position is ndc/zoom - pan.
	before := pz.normalizePos(cursor)
	beforeWorld := Vec2{
		before.X/pz.Zoom.X - pz.Pan.X,
		before.Y/pz.Zoom.Y - pz.Pan.Y,
	}

	pz.ZoomShift(Vec2{40, 0}, cursor)

	after := pz.normalizePos(cursor)
	afterWorld := Vec2{
		after.X/pz.Zoom.X - pz.Pan.X,
		after.Y/pz.Zoom.Y - pz.Pan.Y,
	}

	if !almostEqual(beforeWorld.X, afterWorld.X, 1e-6) || !almostEqual(beforeWorld.Y, afterWorld.Y, 1e-6) {
		t.Fatalf("cursor world position drifted under zoom: before=%v after=%v", beforeWorld, afterWorld)
	}
	if pz.Zoom.X == 1 {
		t.Fatalf("ZoomShift did not change zoom at all")
	}
}

func TestPanzoomWheelZoomsAndEndsGesture(t *testing.T) {
	pz := NewPanzoom(800, 600)
	pz.ZoomWheel(1, Vec2{400, 300})

	if pz.Zoom.X == 1 || pz.Zoom.Y == 1 {
		t.Fatalf("wheel zoom did not change zoom, got %v", pz.Zoom)
	}
	if pz.PanCenter != pz.Pan || pz.ZoomCenter != pz.Zoom {
		t.Fatalf("wheel zoom must call End(): pan=%v/%v zoom=%v/%v", pz.Pan, pz.PanCenter, pz.Zoom, pz.ZoomCenter)
	}
}

func TestPanzoomWheelZeroIsNoOp(t *testing.T) {
	pz := NewPanzoom(800, 600)
	pz.ZoomWheel(0, Vec2{400, 300})
	if pz.Zoom != (Vec2{1, 1}) {
		t.Fatalf("zero-direction wheel must be a no-op, got zoom %v", pz.Zoom)
	}
}

func TestPanzoomMVPFoldsVulkanClipCorrection(t *testing.T) {
	pz := NewPanzoom(800, 600)
	_, proj := pz.MVP()

	// Vulkan clip correction flips Y: row 1 must be negative of the
	// uncorrected ortho projection's row 1.
	ortho := Ortho(-1, 1, -1, 1, -10, 10)
	want := -ortho[1][1]
	if !almostEqual(proj[1][1], want, 1e-9) {
		t.Fatalf("proj[1][1] = %v, want %v (Y flip from ClipVulkan)", proj[1][1], want)
	}
}
