package view

import "math"

// Arcball is the rotate-about-origin view controller of spec §4.11: a
// center translation, a free translation, a quaternion rotation, and the
// mat4 product of the three, recomputed whenever any of them changes.
type Arcball struct {
	Center       Vec3
	Translation  Vec3
	Rotation     Quat
	baseRotation Quat
	mat          Mat4
	dirty        bool
}

// NewArcball creates an arcball centered at the origin with identity
// rotation.
func NewArcball() *Arcball {
	a := &Arcball{Rotation: QuatIdentity, baseRotation: QuatIdentity}
	a.recompute()
	return a
}

// screenToArcball maps a normalized screen coordinate (each component in
// [-1,1]) to a unit quaternion representing the point projected onto the
// interaction sphere, using the classic Shoemake construction: points
// inside the unit circle project onto the sphere's near hemisphere, points
// outside project onto its equator.
func screenToArcball(x, y float64) Quat {
	d := x*x + y*y
	if d > 1 {
		l := math.Sqrt(d)
		return Quat{X: x / l, Y: y / l, Z: 0, W: 0}
	}
	return Quat{X: x, Y: y, Z: math.Sqrt(1 - d), W: 0}
}

// Drag rotates the arcball by composing the rotation that takes the
// press-point's sphere position to the current point's sphere position.
// from and to are normalized screen coordinates ([-1,1]) sampled at the
// start and current point of the drag; rotating always from the original
// press point (not the previous sample) matches the panzoom gesture
// convention of spec §4.10 and avoids incremental drift.
func (a *Arcball) Drag(fromX, fromY, toX, toY float64) {
	p0 := screenToArcball(fromX, fromY)
	p1 := screenToArcball(toX, toY)

	// rotation taking p0 to p1 is p1 * conj(p0) for unit quaternions
	// treated as pure vectors (W=0 here, so conj == negate X/Y/Z).
	conj := Quat{X: -p0.X, Y: -p0.Y, Z: -p0.Z, W: p0.W}
	delta := quatMulVec(p1, conj)
	a.Rotation = delta.Mul(a.baseRotation).Normalize()
	a.dirty = true
}

// quatMulVec is quaternion multiplication where both operands may be pure
// vectors (W possibly 0), used by Drag to build the delta rotation.
func quatMulVec(q, r Quat) Quat { return q.Mul(r) }

// End freezes the current rotation as the base for the next drag gesture.
func (a *Arcball) End() { a.baseRotation = a.Rotation }

// Pan translates the arcball in its own (untranslated) frame.
func (a *Arcball) Pan(delta Vec3) {
	a.Translation.X += delta.X
	a.Translation.Y += delta.Y
	a.Translation.Z += delta.Z
	a.dirty = true
}

// Reset restores center, translation, and rotation to identity.
func (a *Arcball) Reset() {
	a.Center = Vec3{}
	a.Translation = Vec3{}
	a.Rotation = QuatIdentity
	a.baseRotation = QuatIdentity
	a.dirty = true
}

func (a *Arcball) recompute() {
	t := Identity4()
	t[0][3], t[1][3], t[2][3] = a.Translation.X, a.Translation.Y, a.Translation.Z

	c := Identity4()
	c[0][3], c[1][3], c[2][3] = -a.Center.X, -a.Center.Y, -a.Center.Z

	a.mat = t.Mul(a.Rotation.Mat4()).Mul(c)
	a.dirty = false
}

// Matrix returns the combined center/rotation/translation matrix, suitable
// for multiplying into either the model or the view matrix (spec §4.11).
func (a *Arcball) Matrix() Mat4 {
	if a.dirty {
		a.recompute()
	}
	return a.mat
}
