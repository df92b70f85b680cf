package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateTransform is returned by InverseChecked for singular input.
var ErrDegenerateTransform = errors.New("degenerate transform")

// Matrix4x4 is a row-major 4x4 matrix used with row vectors (v * M).
// Row 3 holds the translation of an affine matrix.
type Matrix4x4 struct {
	M [4][4]float32
}

func Identity() Matrix4x4 {
	return Matrix4x4{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Multiply returns a * b. World matrices compose as parent * child.
func Multiply(a, b Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] +
				a.M[i][2]*b.M[2][j] + a.M[i][3]*b.M[3][j]
		}
	}
	return r
}

// Transform returns the row vector v multiplied by m.
func Transform(v Vector4, m Matrix4x4) Vector4 {
	return Vector4{
		X: v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0] + v.W*m.M[3][0],
		Y: v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1] + v.W*m.M[3][1],
		Z: v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2] + v.W*m.M[3][2],
		W: v.X*m.M[0][3] + v.Y*m.M[1][3] + v.Z*m.M[2][3] + v.W*m.M[3][3],
	}
}

func Transpose(m Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// minors holds the 2x2 sub-determinants of the upper (s) and lower (c) row pairs.
type minors struct {
	s [6]float32
	c [6]float32
}

func computeMinors(m Matrix4x4) minors {
	a := &m.M
	return minors{
		s: [6]float32{
			a[0][0]*a[1][1] - a[1][0]*a[0][1],
			a[0][0]*a[1][2] - a[1][0]*a[0][2],
			a[0][0]*a[1][3] - a[1][0]*a[0][3],
			a[0][1]*a[1][2] - a[1][1]*a[0][2],
			a[0][1]*a[1][3] - a[1][1]*a[0][3],
			a[0][2]*a[1][3] - a[1][2]*a[0][3],
		},
		c: [6]float32{
			a[2][0]*a[3][1] - a[3][0]*a[2][1],
			a[2][0]*a[3][2] - a[3][0]*a[2][2],
			a[2][0]*a[3][3] - a[3][0]*a[2][3],
			a[2][1]*a[3][2] - a[3][1]*a[2][2],
			a[2][1]*a[3][3] - a[3][1]*a[2][3],
			a[2][2]*a[3][3] - a[3][2]*a[2][3],
		},
	}
}

func (n minors) det() float32 {
	s, c := n.s, n.c
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func Determinant(m Matrix4x4) float32 {
	return computeMinors(m).det()
}

// Inverse returns the adjugate divided by the determinant.
//
// Singular input (a zero scale axis, for instance) is not trapped: the result
// is filled with Inf/NaN and propagates into whatever consumes it.
func Inverse(m Matrix4x4) Matrix4x4 {
	n := computeMinors(m)
	return adjugate(m, n, 1/n.det())
}

// InverseChecked is Inverse with singular input reported as ErrDegenerateTransform.
func InverseChecked(m Matrix4x4) (Matrix4x4, error) {
	n := computeMinors(m)
	det := n.det()
	if math.Abs(float64(det)) < 1e-12 || !isFinite(det) {
		return Matrix4x4{}, fmt.Errorf("inverse: determinant %g: %w", det, ErrDegenerateTransform)
	}
	return adjugate(m, n, 1/det), nil
}

func adjugate(m Matrix4x4, n minors, inv float32) Matrix4x4 {
	a := &m.M
	s, c := n.s, n.c
	var r Matrix4x4
	r.M[0][0] = (a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) * inv
	r.M[0][1] = (-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) * inv
	r.M[0][2] = (a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) * inv
	r.M[0][3] = (-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) * inv

	r.M[1][0] = (-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) * inv
	r.M[1][1] = (a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) * inv
	r.M[1][2] = (-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) * inv
	r.M[1][3] = (a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) * inv

	r.M[2][0] = (a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) * inv
	r.M[2][1] = (-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) * inv
	r.M[2][2] = (a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) * inv
	r.M[2][3] = (-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) * inv

	r.M[3][0] = (-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) * inv
	r.M[3][1] = (a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) * inv
	r.M[3][2] = (-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) * inv
	r.M[3][3] = (a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) * inv
	return r
}

// Translation returns row 3 of an affine matrix.
func (m Matrix4x4) Translation() Vector3 {
	return Vector3{m.M[3][0], m.M[3][1], m.M[3][2]}
}

// ApproxEqual compares element-wise with an absolute tolerance.
func (m Matrix4x4) ApproxEqual(o Matrix4x4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := m.M[i][j] - o.M[i][j]
			if d > eps || d < -eps || d != d {
				return false
			}
		}
	}
	return true
}
