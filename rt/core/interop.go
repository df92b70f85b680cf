package core

import "github.com/go-gl/mathgl/mgl32"

// Mgl returns the column-vector equivalent of m. The row-major storage of a
// row-vector matrix is exactly mgl32's column-major storage of its transpose,
// so this is a plain copy.
func (m Matrix4x4) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m.M[i][j]
		}
	}
	return out
}

func FromMgl(m mgl32.Mat4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.M[i][j] = m[i*4+j]
		}
	}
	return out
}

func (v Vector3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func Vector3FromMgl(v mgl32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}
