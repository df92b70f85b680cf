package core

import "math"

func MakeScaleMatrix(s Vector3) Matrix4x4 {
	m := Identity()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	return m
}

func MakeTranslateMatrix(t Vector3) Matrix4x4 {
	m := Identity()
	m.M[3][0] = t.X
	m.M[3][1] = t.Y
	m.M[3][2] = t.Z
	return m
}

// MakeRotateXMatrix rotates about X. Angles are radians, left-handed (row vectors).
func MakeRotateXMatrix(rad float32) Matrix4x4 {
	c, s := sincos(rad)
	m := Identity()
	m.M[1][1] = c
	m.M[1][2] = s
	m.M[2][1] = -s
	m.M[2][2] = c
	return m
}

func MakeRotateYMatrix(rad float32) Matrix4x4 {
	c, s := sincos(rad)
	m := Identity()
	m.M[0][0] = c
	m.M[0][2] = -s
	m.M[2][0] = s
	m.M[2][2] = c
	return m
}

func MakeRotateZMatrix(rad float32) Matrix4x4 {
	c, s := sincos(rad)
	m := Identity()
	m.M[0][0] = c
	m.M[0][1] = s
	m.M[1][0] = -s
	m.M[1][1] = c
	return m
}

// MakeRotateMatrix applies the Euler angles in X, Y, Z order.
// Camera, world and joints all go through this so their orientations agree.
func MakeRotateMatrix(r Vector3) Matrix4x4 {
	return Multiply(Multiply(MakeRotateXMatrix(r.X), MakeRotateYMatrix(r.Y)), MakeRotateZMatrix(r.Z))
}

// MakeAffineMatrix returns Scale * RotateX * RotateY * RotateZ * Translate.
func MakeAffineMatrix(scale, rotate, translate Vector3) Matrix4x4 {
	m := Multiply(MakeScaleMatrix(scale), MakeRotateMatrix(rotate))
	return Multiply(m, MakeTranslateMatrix(translate))
}

func sincos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(c), float32(s)
}
