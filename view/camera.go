package view

import "math"

// Camera is the fly-camera view controller of spec §4.11: an eye position
// that smoothly chases a target, driven by a forward/up basis and keyboard
// translation plus mouse-driven yaw/pitch.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
	Yaw    float64 // radians, 0 = looking down -Z
	Pitch  float64 // radians, clamped to avoid gimbal flip

	Speed      float64 // units/second, keyboard translation
	ChaseSpeed float64 // fraction of eye-to-target gap closed per Update call

	forward Vec3
}

// maxPitch keeps the camera from looking past straight up/down, where yaw
// becomes degenerate.
const maxPitch = 89.0 * math.Pi / 180.0

// NewCamera creates a camera at eye that chases target, with the given up
// vector and default speeds. It starts with zero yaw and pitch, so it looks
// down -Z whatever the direction of target.
func NewCamera(eye, target, up Vec3) *Camera {
	c := &Camera{Eye: eye, Target: target, Up: up, Speed: 1, ChaseSpeed: 0.15}
	c.recomputeForward()
	return c
}

func (c *Camera) recomputeForward() {
	c.forward = Vec3{
		X: math.Cos(c.Pitch) * math.Sin(c.Yaw),
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
}

// Look applies a mouse-delta yaw/pitch update, in radians.
func (c *Camera) Look(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.recomputeForward()
}

// right returns the camera's right vector, derived from forward and up.
func (c *Camera) right() Vec3 { return normalize3(cross3(c.forward, c.Up)) }

// Move translates Target along the forward/right/up basis by the given
// amounts (already scaled by Speed and elapsed time by the caller).
func (c *Camera) Move(forwardAmt, rightAmt, upAmt float64) {
	f, r := c.forward, c.right()
	c.Target.X += f.X*forwardAmt + r.X*rightAmt + c.Up.X*upAmt
	c.Target.Y += f.Y*forwardAmt + r.Y*rightAmt + c.Up.Y*upAmt
	c.Target.Z += f.Z*forwardAmt + r.Z*rightAmt + c.Up.Z*upAmt
}

// Update advances Eye a fraction of the way toward Target, called once per
// frame so camera motion reads as a smooth chase rather than an instant
// snap (spec §4.11: "eye interpolates toward the target each frame").
func (c *Camera) Update() {
	c.Eye.X += (c.Target.X - c.Eye.X) * c.ChaseSpeed
	c.Eye.Y += (c.Target.Y - c.Eye.Y) * c.ChaseSpeed
	c.Eye.Z += (c.Target.Z - c.Eye.Z) * c.ChaseSpeed
}

// ViewMatrix returns the current look-at matrix for the interpolated eye
// position, looking along the yaw/pitch-derived forward vector.
func (c *Camera) ViewMatrix() Mat4 {
	center := Vec3{c.Eye.X + c.forward.X, c.Eye.Y + c.forward.Y, c.Eye.Z + c.forward.Z}
	return LookAt(c.Eye, center, c.Up)
}
