package vmath

import "github.com/go-gl/mathgl/mgl32"

// mgl32 stores matrices column-major as well, so conversions are plain copies.

func ToMgl(m Mat4f) mgl32.Mat4 {
	var out mgl32.Mat4
	copy(out[:], m.Flat())
	return out
}

func FromMgl(m mgl32.Mat4) Mat4f {
	var out Mat4f
	copy(out.Flat(), m[:])
	return out
}

func ToMglVec3(v Vec3f) mgl32.Vec3   { return mgl32.Vec3(v) }
func FromMglVec3(v mgl32.Vec3) Vec3f { return Vec3f(v) }
func ToMglVec4(v Vec4f) mgl32.Vec4   { return mgl32.Vec4(v) }
func FromMglVec4(v mgl32.Vec4) Vec4f { return Vec4f(v) }
