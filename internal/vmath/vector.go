// Package vmath holds the small fixed-size vector and matrix types used by
// the demos for transforms. Everything is a value type; matrices store
// their columns contiguously so a *float32 to element [0][0] is a valid
// uniform upload without transposition.
package vmath

import "math"

// Number is any scalar a vector or matrix may hold. GPU-facing code always
// uses float32; the other kinds exist for integer math and tests.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of Number used by the operations that need fractions.
type Float interface {
	~float32 | ~float64
}

type (
	Vec2[T Number] [2]T
	Vec3[T Number] [3]T
	Vec4[T Number] [4]T
)

type (
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]
)

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a[0] + b[0], a[1] + b[1]} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a[0] - b[0], a[1] - b[1]} }
func (a Vec2[T]) Mul(s T) Vec2[T]       { return Vec2[T]{a[0] * s, a[1] * s} }
func (a Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{a[0] / s, a[1] / s} }
func (a Vec2[T]) Dot(b Vec2[T]) T       { return a[0]*b[0] + a[1]*b[1] }

// Length returns the euclidean length of a.
func (a Vec2[T]) Length() float32 { return length(float64(a.Dot(a))) }

// Angle returns the angle between a and b in radians.
func (a Vec2[T]) Angle(b Vec2[T]) float32 {
	return angle(float64(a.Dot(b)), a.Length(), b.Length())
}

// Normalize returns a scaled to unit length, or the zero vector when a has
// zero length.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := float64(a.Length())
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{T(float64(a[0]) / l), T(float64(a[1]) / l)}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a Vec3[T]) Mul(s T) Vec3[T]       { return Vec3[T]{a[0] * s, a[1] * s, a[2] * s} }
func (a Vec3[T]) Div(s T) Vec3[T]       { return Vec3[T]{a[0] / s, a[1] / s, a[2] / s} }
func (a Vec3[T]) Dot(b Vec3[T]) T       { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Neg returns -a. Unsigned kinds wrap.
func (a Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-a[0], -a[1], -a[2]} }

// Cross returns the right-handed cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec3[T]) Length() float32 { return length(float64(a.Dot(a))) }

func (a Vec3[T]) Angle(b Vec3[T]) float32 {
	return angle(float64(a.Dot(b)), a.Length(), b.Length())
}

// Normalize returns a scaled to unit length, or the zero vector when a has
// zero length.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := float64(a.Length())
	if l == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{T(float64(a[0]) / l), T(float64(a[1]) / l), T(float64(a[2]) / l)}
}

// Vec4 extends a with w.
func (a Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{a[0], a[1], a[2], w} }

func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Vec4[T]) Mul(s T) Vec4[T] { return Vec4[T]{a[0] * s, a[1] * s, a[2] * s, a[3] * s} }
func (a Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{a[0] / s, a[1] / s, a[2] / s, a[3] / s} }
func (a Vec4[T]) Dot(b Vec4[T]) T { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] }

func (a Vec4[T]) Length() float32 { return length(float64(a.Dot(a))) }

func (a Vec4[T]) Angle(b Vec4[T]) float32 {
	return angle(float64(a.Dot(b)), a.Length(), b.Length())
}

func (a Vec4[T]) Normalize() Vec4[T] {
	l := float64(a.Length())
	if l == 0 {
		return Vec4[T]{}
	}
	return Vec4[T]{
		T(float64(a[0]) / l), T(float64(a[1]) / l),
		T(float64(a[2]) / l), T(float64(a[3]) / l),
	}
}

// Vec3 drops w.
func (a Vec4[T]) Vec3() Vec3[T] { return Vec3[T]{a[0], a[1], a[2]} }

// Reflect returns the reflection of incident vector i about normal n:
// i - 2·dot(n,i)·n.
func Reflect[T Float](i, n Vec3[T]) Vec3[T] {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// Refract bends incident vector i through a surface with normal n and ratio
// of indices of refraction eta. Total internal reflection yields the zero
// vector.
func Refract[T Float](i, n Vec3[T], eta T) Vec3[T] {
	d := float64(n.Dot(i))
	e := float64(eta)
	k := 1 - e*e*(1-d*d)
	if k < 0 {
		return Vec3[T]{}
	}
	return i.Mul(eta).Sub(n.Mul(T(e*d + math.Sqrt(k))))
}

// Mix linearly interpolates from a to b by t.
func Mix[T Float](a, b, t T) T { return a + t*(b-a) }

func MixVec3[T Float](a, b Vec3[T], t T) Vec3[T] { return a.Add(b.Sub(a).Mul(t)) }

func MixVec4[T Float](a, b Vec4[T], t T) Vec4[T] { return a.Add(b.Sub(a).Mul(t)) }

func length(sq float64) float32 { return float32(math.Sqrt(sq)) }

func angle(dot float64, la, lb float32) float32 {
	c := dot / (float64(la) * float64(lb))
	// rounding can push the cosine just outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return float32(math.Acos(c))
}
