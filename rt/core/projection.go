package core

import "math"

// MakePerspectiveFovMatrix builds a left-handed perspective projection that maps
// view-space depth [nearZ, farZ] to [0, 1] after the divide.
//
// Callers keep 0 < nearZ < farZ and 0 < fovY < π; nothing is validated here.
func MakePerspectiveFovMatrix(fovY, aspectRatio, nearZ, farZ float32) Matrix4x4 {
	cot := float32(1 / math.Tan(float64(fovY)/2))
	var m Matrix4x4
	m.M[0][0] = cot / aspectRatio
	m.M[1][1] = cot
	m.M[2][2] = farZ / (farZ - nearZ)
	m.M[2][3] = 1
	m.M[3][2] = -nearZ * farZ / (farZ - nearZ)
	return m
}

// MakeOrthographicMatrix maps the box [left,right]x[bottom,top]x[near,far] to
// [-1,1]x[-1,1]x[0,1], matching the perspective depth convention.
func MakeOrthographicMatrix(left, top, right, bottom, nearZ, farZ float32) Matrix4x4 {
	m := Identity()
	m.M[0][0] = 2 / (right - left)
	m.M[1][1] = 2 / (top - bottom)
	m.M[2][2] = 1 / (farZ - nearZ)
	m.M[3][0] = (left + right) / (left - right)
	m.M[3][1] = (top + bottom) / (bottom - top)
	m.M[3][2] = nearZ / (nearZ - farZ)
	return m
}

// MakeViewportMatrix maps NDC to pixels. Screen Y grows downward, so NDC (-1,-1)
// lands on (left, top+height) and NDC (1,1) on (left+width, top).
func MakeViewportMatrix(left, top, width, height, minDepth, maxDepth float32) Matrix4x4 {
	var m Matrix4x4
	m.M[0][0] = width / 2
	m.M[1][1] = -height / 2
	m.M[2][2] = maxDepth - minDepth
	m.M[3][0] = left + width/2
	m.M[3][1] = top + height/2
	m.M[3][2] = minDepth
	m.M[3][3] = 1
	return m
}

// ProjectToScreen runs a world point through view-projection, the perspective
// divide and the viewport. Z is kept as depth.
//
// The divide is not guarded: a point with clip w == 0 yields Inf/NaN
// coordinates, and line sinks are expected to drop them.
func ProjectToScreen(point Vector3, viewProjection, viewport Matrix4x4) Vector3 {
	clip := Transform(point.Vec4(1), viewProjection)
	ndc := Vector4{clip.X / clip.W, clip.Y / clip.W, clip.Z / clip.W, 1}
	return Transform(ndc, viewport).Vec3()
}
