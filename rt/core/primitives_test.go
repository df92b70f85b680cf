package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type segment struct {
	x0, y0, x1, y1 float32
	color          uint32
}

type recorder struct {
	segments []segment
}

func (r *recorder) DrawLine(x0, y0, x1, y1 float32, color uint32) {
	r.segments = append(r.segments, segment{x0, y0, x1, y1, color})
}

func (r *recorder) count(color uint32) int {
	n := 0
	for _, s := range r.segments {
		if s.color == color {
			n++
		}
	}
	return n
}

func defaultFrame() Frame {
	return NewRig().Frame(DefaultViewConfig())
}

func TestDrawGrid(t *testing.T) {
	f := defaultFrame()
	rec := &recorder{}
	DrawGrid(f.ViewProjection, f.Viewport, rec)

	assert.Len(t, rec.segments, 2*(GridSubdivision+1))
	assert.Equal(t, 2, rec.count(ColorGridCenter))
	assert.Equal(t, 2*GridSubdivision, rec.count(ColorGrid))
	for _, s := range rec.segments {
		assert.True(t, Vector3{s.x0, s.y0, s.x1}.IsFinite())
	}
}

func TestDrawSphere(t *testing.T) {
	f := defaultFrame()
	rec := &recorder{}
	DrawSphere(Sphere{Center: f.JointPositions[0], Radius: 0.1}, f.ViewProjection, f.Viewport, ColorRed, rec)

	assert.Len(t, rec.segments, 2*SphereSubdivision*SphereSubdivision)
	assert.Equal(t, len(rec.segments), rec.count(ColorRed))

	// Every vertex stays close to the projected centre.
	c := f.JointScreen[0]
	for _, s := range rec.segments {
		assert.InDelta(t, c.X, s.x0, 40)
		assert.InDelta(t, c.Y, s.y0, 40)
	}
}

func TestDrawSphereZeroRadius(t *testing.T) {
	f := defaultFrame()
	rec := &recorder{}
	DrawSphere(Sphere{Center: Vector3{}, Radius: 0}, f.ViewProjection, f.Viewport, ColorBlue, rec)

	first := rec.segments[0]
	for _, s := range rec.segments {
		assert.Equal(t, first.x0, s.x1)
		assert.Equal(t, first.y0, s.y1)
	}
}
