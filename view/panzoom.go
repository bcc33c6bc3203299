package view

import (
	"math"
	"runtime"

	"github.com/dvzkit/dvz/input"
)

// Panzoom drag/wheel coefficients (spec §4.10). The wheel coefficient and
// sign flip for macOS mirror original_source/src/scene/panzoom.c's
// touchpad-sensitivity workaround (macOS wheel events arrive with far
// higher magnitude than other platforms' discrete notches).
const (
	zoomDragCoef  = 0.002
	zoomWheelCoef = 60.0
)

func init() {
	if runtime.GOOS == "darwin" {
		// matches DVZ_PANZOOM_ZOOM_DRAG_COEF/WHEEL_COEF under OS_MACOS
		panzoomDragCoef = 0.001
		panzoomWheelCoef = -8.0
	}
}

var panzoomDragCoef = zoomDragCoef
var panzoomWheelCoef = zoomWheelCoef

// Panzoom is the 2D pan/zoom view controller of spec §4.10, implemented to
// match original_source/src/scene/panzoom.c exactly (the spec's own
// illustrative numbers in §8 scenario 3 are only approximate).
type Panzoom struct {
	ViewportSize     Vec2
	Pan              Vec2
	PanCenter        Vec2
	Zoom             Vec2
	ZoomCenter       Vec2
	Xlim, Ylim, Zlim Vec2
}

// NewPanzoom creates a panzoom controller for the given inner-viewport
// pixel size, with identity pan/zoom.
func NewPanzoom(width, height float64) *Panzoom {
	pz := &Panzoom{ViewportSize: Vec2{width, height}}
	pz.Reset()
	return pz
}

// Resize updates the viewport size used for pixel<->NDC conversions.
func (pz *Panzoom) Resize(width, height float64) { pz.ViewportSize = Vec2{width, height} }

// Reset restores pan=0, zoom=1 and freezes both as the new gesture origin.
func (pz *Panzoom) Reset() {
	pz.Pan = Vec2{}
	pz.PanCenter = Vec2{}
	pz.Zoom = Vec2{1, 1}
	pz.ZoomCenter = Vec2{1, 1}
}

// normalizePos converts a pixel position (origin upper-left) to NDC
// (origin center, Y up).
func (pz *Panzoom) normalizePos(p Vec2) Vec2 {
	w, h := pz.ViewportSize.X, pz.ViewportSize.Y
	return Vec2{-1 + 2*p.X/w, 1 - 2*p.Y/h}
}

// normalizeShift converts a pixel displacement to a normalized (NDC-scale)
// displacement.
func (pz *Panzoom) normalizeShift(d Vec2) Vec2 {
	w, h := pz.ViewportSize.X, pz.ViewportSize.Y
	return Vec2{2 * d.X / w, -2 * d.Y / h}
}

// PanShift applies a pan drag given the pixel displacement since the
// gesture began (press position, not the previous sample).
func (pz *Panzoom) PanShift(shiftPx Vec2) {
	shift := pz.normalizeShift(shiftPx)
	pz.Pan = Vec2{
		pz.PanCenter.X + shift.X/pz.Zoom.X,
		pz.PanCenter.Y + shift.Y/pz.Zoom.Y,
	}
}

// ZoomShift applies a zoom drag: shiftPx is the pixel displacement since
// the gesture began, centerPx the cursor position (pixel coords) that must
// stay fixed under the zoom.
func (pz *Panzoom) ZoomShift(shiftPx, centerPx Vec2) {
	shift := pz.normalizeShift(shiftPx)
	center := pz.normalizePos(centerPx)

	zx0, zy0 := pz.ZoomCenter.X, pz.ZoomCenter.Y
	w, h := pz.ViewportSize.X, pz.ViewportSize.Y
	a := 0.5 * (w + h)

	pz.Zoom.X = zx0 * math.Exp(panzoomDragCoef*a*shift.X)
	pz.Zoom.Y = zy0 * math.Exp(panzoomDragCoef*a*shift.Y)
	zx, zy := pz.Zoom.X, pz.Zoom.Y

	px := center.X * (1/zx0 - 1/zx) * zx
	py := center.Y * (1/zy0 - 1/zy) * zy

	pz.Pan.X = pz.PanCenter.X - px/zx
	pz.Pan.Y = pz.PanCenter.Y - py/zy
}

// ZoomWheel applies a platform-dependent wheel zoom about centerPx and
// immediately ends the gesture (spec §4.10: "Then run the zoom-drag
// transform with that shift and call end()").
func (pz *Panzoom) ZoomWheel(dirY float64, centerPx Vec2) {
	if dirY == 0 {
		return
	}
	w, h := pz.ViewportSize.X, pz.ViewportSize.Y
	aspect := h / w
	d := dirY / math.Abs(dirY)

	var shift Vec2
	shift.X = panzoomWheelCoef * d
	shift.Y = -aspect * shift.X
	pz.ZoomShift(shift, centerPx)
	pz.End()
}

// End freezes the current pan/zoom as the origin for the next gesture.
func (pz *Panzoom) End() {
	pz.PanCenter = pz.Pan
	pz.ZoomCenter = pz.Zoom
}

// MVP returns the view and projection matrices for the current pan/zoom,
// with the Vulkan clip-space correction folded into proj (spec §4.10).
func (pz *Panzoom) MVP() (view, proj Mat4) {
	x, y := -pz.Pan.X, -pz.Pan.Y
	view = LookAt(Vec3{x, y, 2}, Vec3{x, y, 0}, Vec3{0, 1, 0})

	zx, zy := pz.Zoom.X, pz.Zoom.Y
	proj = ClipVulkan.Mul(Ortho(-1/zx, 1/zx, -1/zy, 1/zy, -10, 10))
	return view, proj
}

// BindMouse wires the standard panzoom mouse bindings of spec §4.10: left
// drag pans, right drag zooms about the cursor, drag-stop ends the
// gesture, wheel zooms, double-click resets. pressPos and curPos are in
// pixel coordinates.
func (pz *Panzoom) BindMouse(e input.MouseEvent) {
	shift := Vec2{e.Pos[0] - e.PressPos[0], e.Pos[1] - e.PressPos[1]}
	center := Vec2{e.PressPos[0], e.PressPos[1]}

	switch e.Type {
	case input.EventMouseDragStart, input.EventMouseDrag:
		switch e.Button {
		case input.ButtonLeft:
			pz.PanShift(shift)
		case input.ButtonRight:
			pz.ZoomShift(shift, center)
		}
	case input.EventMouseDragStop:
		pz.End()
	case input.EventMouseWheel:
		pz.ZoomWheel(e.WheelDir[1], Vec2{e.Pos[0], e.Pos[1]})
	case input.EventMouseDoubleClick:
		pz.Reset()
	}
}
