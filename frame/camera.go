package frame

import (
	"math"

	"github.com/flexengine/renderer/core"
)

// Mat4 values are stored column-major (index = col*4+row), matching the
// upload convention core.Mat4's own doc comment requires.

func mat4Identity() core.Mat4 {
	return core.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// mat4Mul returns a*b, i.e. the transform that applies b first, then a.
func mat4Mul(a, b core.Mat4) core.Mat4 {
	var out core.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func vecSub(a, b core.Vec3) core.Vec3 {
	return core.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func vecAdd(a, b core.Vec3) core.Vec3 {
	return core.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func vecScale(a core.Vec3, s float32) core.Vec3 {
	return core.Vec3{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

func vecCross(a, b core.Vec3) core.Vec3 {
	return core.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func vecDot(a, b core.Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func vecNormalize(a core.Vec3) core.Vec3 {
	l := float32(math.Sqrt(float64(vecDot(a, a))))
	if l == 0 {
		return a
	}
	return vecScale(a, 1/l)
}

// mat4LookAt builds a right-handed view matrix, camera at eye looking toward
// center with the given approximate up vector.
func mat4LookAt(eye, center, up core.Vec3) core.Mat4 {
	f := vecNormalize(vecSub(center, eye))
	s := vecNormalize(vecCross(f, up))
	u := vecCross(s, f)

	return core.Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-vecDot(s, eye), -vecDot(u, eye), vecDot(f, eye), 1,
	}
}

// mat4Perspective builds a right-handed perspective projection matching the
// GL clip-space convention (z in [-1,1]).
func mat4Perspective(fovYRadians, aspect, near, far float32) core.Mat4 {
	f := float32(1 / math.Tan(float64(fovYRadians)/2))
	var m core.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	return m
}

// mat4Ortho builds a right-handed orthographic projection matching the same
// GL clip-space z range mat4Perspective uses, the box every shadow cascade
// fits around its frustum slice.
func mat4Ortho(left, right, bottom, top, near, far float32) core.Mat4 {
	m := mat4Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}

// mat4TransformPoint applies m to a homogeneous point (w=1) without the
// perspective divide, valid for the affine view/ortho matrices the cascade
// fitting step builds.
func mat4TransformPoint(m core.Mat4, p core.Vec3) core.Vec3 {
	return core.Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// mat4TransformHomogeneous applies m to point p (w=1) and keeps the
// resulting w component, needed for the perspective divide a projective
// (as opposed to affine) transform requires.
func mat4TransformHomogeneous(m core.Mat4, p core.Vec3) core.Vec4 {
	return core.Vec4{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
		W: m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15],
	}
}

func mulVec3(a, b core.Vec3) core.Vec3 {
	return core.Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func lerp3(a, b core.Vec3, t float32) core.Vec3 {
	return core.Vec3{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t, Z: a.Z + (b.Z-a.Z)*t}
}

// ViewMatrix returns cam's view matrix.
func ViewMatrix(cam core.Camera) core.Mat4 {
	return mat4LookAt(cam.Position, vecAdd(cam.Position, cam.Forward), cam.Up)
}

// ProjectionMatrix returns cam's perspective projection matrix.
func ProjectionMatrix(cam core.Camera) core.Mat4 {
	return mat4Perspective(cam.FovYRadians, cam.Aspect, cam.Near, cam.Far)
}
