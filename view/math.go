// Package view implements the interactive view controllers of spec §4.10-
// §4.11: panzoom (pixel-to-NDC pan/zoom), arcball, and a fly camera, plus
// the panel/grid layout of spec §3.1. Vector and matrix conventions
// (explicit X/Y/Z/W struct fields, row-major 4x4 storage, value-receiver
// methods) follow gazed-vu/math/lin, the one math package among the
// retrieved examples aimed at the same CPU-side transform role; the
// teacher (a GPU API, not a scene/view library) has no vector-math package
// of its own to ground this on.
package view

import (
	"encoding/binary"
	"math"
)

// Vec2 is a 2-element vector or point.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3-element vector or point.
type Vec3 struct{ X, Y, Z float64 }

// Mat4 is a row-major 4x4 matrix: M[row][col].
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Mul returns a*b (a applied after b, i.e. standard row-major composition
// for column-vector convention: (a*b)*v = a*(b*v)).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// LookAt builds a right-handed view matrix for eye looking toward center
// with the given up vector, matching glm_lookat as used by the panzoom MVP
// (spec §4.10).
func LookAt(eye, center, up Vec3) Mat4 {
	f := normalize3(sub3(center, eye))
	s := normalize3(cross3(f, up))
	u := cross3(s, f)

	m := Identity4()
	m[0][0], m[0][1], m[0][2] = s.X, s.Y, s.Z
	m[1][0], m[1][1], m[1][2] = u.X, u.Y, u.Z
	m[2][0], m[2][1], m[2][2] = -f.X, -f.Y, -f.Z
	m[0][3] = -dot3(s, eye)
	m[1][3] = -dot3(u, eye)
	m[2][3] = dot3(f, eye)
	return m
}

// Ortho builds an orthographic projection matrix over
// [left,right]x[bottom,top]x[near,far] in OpenGL NDC (Z in [-1,1]),
// matching glm_ortho as used by the panzoom MVP (spec §4.10).
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	m := Identity4()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[0][3] = -(right + left) / (right - left)
	m[1][3] = -(top + bottom) / (top - bottom)
	m[2][3] = -(far + near) / (far - near)
	return m
}

// ClipVulkan is the fixed correction matrix that converts an OpenGL-style
// projection (Y up, Z in [-1,1]) to Vulkan conventions (Y down, Z in
// [0,1]), per spec §4.10.
var ClipVulkan = Mat4{
	{1, 0, 0, 0},
	{0, -1, 0, 0},
	{0, 0, 0.5, 0.5},
	{0, 0, 0, 1},
}

// UniformBytes packs m as 16 little-endian float32s in column-major order,
// the layout a GLSL `mat4` uniform expects, for upload via
// present.Presenter.UploadDat (spec §4.10's "upload_dat" MVP binding).
func (m Mat4) UniformBytes() []byte {
	buf := make([]byte, 16*4)
	i := 0
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(m[row][col])))
			i++
		}
	}
	return buf
}

func sub3(a, b Vec3) Vec3    { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func dot3(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func cross3(a, b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}
func length3(a Vec3) float64 { return math.Sqrt(dot3(a, a)) }
func normalize3(a Vec3) Vec3 {
	l := length3(a)
	if l == 0 {
		return a
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Quat is a unit quaternion rotation, X/Y/Z the direction vector and W the
// angle component, matching lin.Q's field layout.
type Quat struct{ X, Y, Z, W float64 }

// QuatIdentity is the identity rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

// Mul composes two rotations: applying q.Mul(r) rotates by r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Normalize returns q scaled to unit length, or QuatIdentity for a
// near-zero quaternion.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n < 1e-12 {
		return QuatIdentity
	}
	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

// Mat4 converts the quaternion to its rotation matrix.
func (q Quat) Mat4() Mat4 {
	q = q.Normalize()
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m := Identity4()
	m[0][0] = 1 - 2*(y*y+z*z)
	m[0][1] = 2 * (x*y - z*w)
	m[0][2] = 2 * (x*z + y*w)
	m[1][0] = 2 * (x*y + z*w)
	m[1][1] = 1 - 2*(x*x+z*z)
	m[1][2] = 2 * (y*z - x*w)
	m[2][0] = 2 * (x*z - y*w)
	m[2][1] = 2 * (y*z + x*w)
	m[2][2] = 1 - 2*(x*x+y*y)
	return m
}
