package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportCorners(t *testing.T) {
	vp := MakeViewportMatrix(0, 0, 1280, 720, 0, 1)

	tests := []struct {
		name string
		ndc  Vector4
		want Vector3
	}{
		{"bottom-left near", Vector4{-1, -1, 0, 1}, Vector3{0, 720, 0}},
		{"top-right far", Vector4{1, 1, 1, 1}, Vector3{1280, 0, 1}},
		{"centre", Vector4{0, 0, 0.5, 1}, Vector3{640, 360, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transform(tt.ndc, vp).Vec3())
		})
	}
}

func TestViewportOffset(t *testing.T) {
	vp := MakeViewportMatrix(100, 50, 200, 100, 0.25, 0.75)
	got := Transform(Vector4{-1, -1, 1, 1}, vp).Vec3()
	assert.Equal(t, Vector3{100, 150, 0.75}, got)
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := MakePerspectiveFovMatrix(0.45, 16.0/9.0, 0.1, 100)

	near := Transform(Vector4{0, 0, 0.1, 1}, proj)
	far := Transform(Vector4{0, 0, 100, 1}, proj)
	assert.InDelta(t, 0, near.Z/near.W, 1e-5)
	assert.InDelta(t, 1, far.Z/far.W, 1e-5)
	// Left-handed: w is view-space +Z.
	assert.Equal(t, float32(100), far.W)
}

func TestOrthographicBox(t *testing.T) {
	m := MakeOrthographicMatrix(-2, 1, 2, -1, 0, 10)

	lo := Transform(Vector4{-2, -1, 0, 1}, m)
	hi := Transform(Vector4{2, 1, 10, 1}, m)
	assert.InDelta(t, -1, lo.X, 1e-6)
	assert.InDelta(t, -1, lo.Y, 1e-6)
	assert.InDelta(t, 0, lo.Z, 1e-6)
	assert.InDelta(t, 1, hi.X, 1e-6)
	assert.InDelta(t, 1, hi.Y, 1e-6)
	assert.InDelta(t, 1, hi.Z, 1e-6)
}

func TestProjectLookAtOrigin(t *testing.T) {
	view := DefaultViewConfig()
	camera := MakeAffineMatrix(Vector3{1, 1, 1}, Vector3{}, Vector3{0, 0, -5})
	vp := Multiply(Inverse(camera), view.Projection())

	got := ProjectToScreen(Vector3{}, vp, view.Viewport())
	assert.InDelta(t, 640, got.X, 1e-3)
	assert.InDelta(t, 360, got.Y, 1e-3)
	assert.True(t, got.Z > 0 && got.Z < 1)

	// Points above the origin end up higher on screen.
	up := ProjectToScreen(Vector3{0, 1, 0}, vp, view.Viewport())
	assert.Less(t, up.Y, got.Y)
}

func TestProjectOnCameraPlane(t *testing.T) {
	view := DefaultViewConfig()
	camera := MakeTranslateMatrix(Vector3{0, 0, -5})
	vp := Multiply(Inverse(camera), view.Projection())

	got := ProjectToScreen(Vector3{0, 0, -5}, vp, view.Viewport())
	assert.False(t, got.IsFinite())
}
