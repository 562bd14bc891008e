package vmath

import "github.com/chewxy/math32"

const degToRad = math32.Pi / 180

// Radians converts degrees to radians.
func Radians(deg float32) float32 { return deg * degToRad }

// Translate returns a matrix that moves points by (x, y, z).
func Translate(x, y, z float32) Mat4f {
	m := Identity4[float32]()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func Scale(x, y, z float32) Mat4f {
	m := Identity4[float32]()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateAxis rotates by angle degrees about the axis (x, y, z). The axis is
// normalized first; a zero axis yields the identity.
func RotateAxis(angle, x, y, z float32) Mat4f {
	axis := Vec3f{x, y, z}.Normalize()
	if axis == (Vec3f{}) {
		return Identity4[float32]()
	}
	x, y, z = axis[0], axis[1], axis[2]

	rad := Radians(angle)
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	omc := 1 - c

	return Mat4f{
		{x*x*omc + c, y*x*omc + z*s, x*z*omc - y*s, 0},
		{x*y*omc - z*s, y*y*omc + c, y*z*omc + x*s, 0},
		{x*z*omc + y*s, y*z*omc - x*s, z*z*omc + c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate composes rotations about the principal axes as Rz·Ry·Rx, so points
// are rotated about x first.
func Rotate(ex, ey, ez float32) Mat4f {
	return RotateAxis(ez, 0, 0, 1).
		Mul(RotateAxis(ey, 0, 1, 0)).
		Mul(RotateAxis(ex, 1, 0, 0))
}

// LookAt builds a right-handed view matrix placing the camera at eye looking
// at center. The side vector is renormalized so the rotation stays
// orthonormal when up is not perpendicular to the view direction.
func LookAt(eye, center, up Vec3f) Mat4f {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)

	// s, u and -f are the rows of the rotation
	m := Mat4f{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{0, 0, 0, 1},
	}
	return m.Mul(Translate(-eye[0], -eye[1], -eye[2]))
}

// Frustum returns an OpenGL projection matrix mapping the given view volume
// to clip z in [-1, 1]. Degenerate volumes return the identity.
func Frustum(l, r, b, t, n, f float32) Mat4f {
	if r == l || t == b || n == f || n < 0 || f < 0 {
		return Identity4[float32]()
	}

	var m Mat4f
	m[0][0] = (2 * n) / (r - l)
	m[1][1] = (2 * n) / (t - b)
	m[2][0] = (r + l) / (r - l)
	m[2][1] = (t + b) / (t - b)
	m[2][2] = (n + f) / (n - f)
	m[2][3] = -1
	m[3][2] = (2 * n * f) / (n - f)
	return m
}

// Perspective returns a symmetric projection with vertical field of view
// fovy degrees. Degenerate arguments return the identity.
func Perspective(fovy, aspect, n, f float32) Mat4f {
	if aspect == 0 || n == f || n < 0 || f < 0 || fovy <= 0 || fovy >= 180 {
		return Identity4[float32]()
	}

	q := 1 / math32.Tan(Radians(fovy)*0.5)

	var m Mat4f
	m[0][0] = q / aspect
	m[1][1] = q
	m[2][2] = (n + f) / (n - f)
	m[2][3] = -1
	m[3][2] = (2 * n * f) / (n - f)
	return m
}

// Ortho returns an orthographic projection. Degenerate volumes return the
// identity.
func Ortho(l, r, b, t, n, f float32) Mat4f {
	if r == l || t == b || n == f {
		return Identity4[float32]()
	}

	m := Identity4[float32]()
	m[0][0] = 2 / (r - l)
	m[1][1] = 2 / (t - b)
	m[2][2] = -2 / (f - n)
	m[3][0] = -(r + l) / (r - l)
	m[3][1] = -(t + b) / (t - b)
	m[3][2] = -(f + n) / (f - n)
	return m
}
