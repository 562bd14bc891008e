package vmath

import "unsafe"

// Matrices are arrays of column vectors: m[c] is column c and m[c][r] is the
// element in row r. The names give columns first, so Mat2x3 has two columns
// of three rows.
type (
	Mat2[T Number]   [2]Vec2[T]
	Mat3[T Number]   [3]Vec3[T]
	Mat4[T Number]   [4]Vec4[T]
	Mat2x3[T Number] [2]Vec3[T]
	Mat3x2[T Number] [3]Vec2[T]
	Mat3x4[T Number] [3]Vec4[T]
	Mat4x3[T Number] [4]Vec3[T]
)

type (
	Mat3f = Mat3[float32]
	Mat4f = Mat4[float32]
)

func Identity2[T Number]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

func Identity3[T Number]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func Identity4[T Number]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Mat4FromRows builds a matrix from its rows, which is how matrices are
// usually written down on paper.
func Mat4FromRows[T Number](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}.Transpose()
}

// Flat exposes the 16 elements in storage order; element [c][r] is at 4c+r.
func (m *Mat4[T]) Flat() []T { return unsafe.Slice(&m[0][0], 16) }

// Flat exposes the 9 elements in storage order; element [c][r] is at 3c+r.
func (m *Mat3[T]) Flat() []T { return unsafe.Slice(&m[0][0], 9) }

// Ptr returns a pointer to the first element, suitable for glUniformMatrix4fv
// with transpose=false.
func Ptr(m *Mat4f) *float32 { return &m[0][0] }

func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	var out Mat2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			for k := 0; k < 2; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1]))
}

func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			for k := 0; k < 3; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2]))
}

func (m Mat3[T]) Transpose() Mat3[T] {
	var out Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 4; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2])).Add(m[3].Mul(v[3]))
}

func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Mat3 returns the upper-left 3×3 block, e.g. for normal matrices.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{m[0].Vec3(), m[1].Vec3(), m[2].Vec3()}
}

// Inverse returns the inverse of m computed by cofactor expansion in float64.
// ok is false when m is singular, in which case the identity is returned.
func (m Mat4[T]) Inverse() (inv Mat4[T], ok bool) {
	var a [16]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a[4*c+r] = float64(m[c][r])
		}
	}

	var o [16]float64
	o[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	o[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	o[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	o[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	o[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	o[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	o[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	o[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	o[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	o[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	o[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	o[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	o[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	o[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	o[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	o[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*o[0] + a[1]*o[4] + a[2]*o[8] + a[3]*o[12]
	if det == 0 {
		return Identity4[T](), false
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			inv[c][r] = T(o[4*c+r] / det)
		}
	}
	return inv, true
}

// Non-square products. An A×B matrix (A columns) multiplies a matrix with A
// rows; the result has the right operand's column count and the left
// operand's row count.

func (m Mat2x3[T]) Mul(n Mat3x2[T]) Mat3[T] {
	var out Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			for k := 0; k < 2; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat2x3[T]) MulVec(v Vec2[T]) Vec3[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1]))
}

func (m Mat2x3[T]) Transpose() Mat3x2[T] {
	return Mat3x2[T]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}, {m[0][2], m[1][2]}}
}

func (m Mat3x2[T]) Mul(n Mat2x3[T]) Mat2[T] {
	var out Mat2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			for k := 0; k < 3; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat3x2[T]) MulVec(v Vec3[T]) Vec2[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2]))
}

func (m Mat3x2[T]) Transpose() Mat2x3[T] {
	return Mat2x3[T]{{m[0][0], m[1][0], m[2][0]}, {m[0][1], m[1][1], m[2][1]}}
}

func (m Mat3x4[T]) Mul(n Mat4x3[T]) Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 3; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat3x4[T]) MulVec(v Vec3[T]) Vec4[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2]))
}

func (m Mat4x3[T]) Mul(n Mat3x4[T]) Mat3[T] {
	var out Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			for k := 0; k < 4; k++ {
				out[c][r] += m[k][r] * n[c][k]
			}
		}
	}
	return out
}

func (m Mat4x3[T]) MulVec(v Vec4[T]) Vec3[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1])).Add(m[2].Mul(v[2])).Add(m[3].Mul(v[3]))
}
