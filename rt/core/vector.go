package core

import "math"

// Vector3 is used for positions, scale factors, Euler angles (radians) and translations.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a homogeneous vector. W carries the perspective divisor.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Vec4 lifts v to homogeneous form with the given w.
func (v Vector3) Vec4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Vec3 drops w without dividing.
func (v Vector4) Vec3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// IsFinite reports whether no component is NaN or Inf.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
