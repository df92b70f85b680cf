package core

import "math"

// LineDrawer receives screen-space segments. Colors are packed 0xRRGGBBAA.
// Implementations must tolerate non-finite coordinates.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 float32, color uint32)
}

const (
	ColorGrid       uint32 = 0xAAAAAAFF
	ColorGridCenter uint32 = 0x000000FF
	ColorWhite      uint32 = 0xFFFFFFFF
	ColorRed        uint32 = 0xFF0000FF
	ColorGreen      uint32 = 0x00FF00FF
	ColorBlue       uint32 = 0x0000FFFF
)

const (
	GridHalfWidth   = 2.0
	GridSubdivision = 10

	SphereSubdivision = 10
)

type Sphere struct {
	Center Vector3
	Radius float32
}

// DrawSegment projects a world-space segment and hands it to dst.
func DrawSegment(a, b Vector3, viewProjection, viewport Matrix4x4, color uint32, dst LineDrawer) {
	sa := ProjectToScreen(a, viewProjection, viewport)
	sb := ProjectToScreen(b, viewProjection, viewport)
	dst.DrawLine(sa.X, sa.Y, sb.X, sb.Y, color)
}

// DrawGrid draws a ground grid on the XZ plane centred on the origin.
// The two lines through the origin use ColorGridCenter.
func DrawGrid(viewProjection, viewport Matrix4x4, dst LineDrawer) {
	const every = float32(GridHalfWidth*2) / GridSubdivision
	const half = float32(GridHalfWidth)

	for i := 0; i <= GridSubdivision; i++ {
		color := ColorGrid
		if i == GridSubdivision/2 {
			color = ColorGridCenter
		}
		x := -half + float32(i)*every
		DrawSegment(Vector3{x, 0, -half}, Vector3{x, 0, half}, viewProjection, viewport, color, dst)
	}
	for i := 0; i <= GridSubdivision; i++ {
		color := ColorGrid
		if i == GridSubdivision/2 {
			color = ColorGridCenter
		}
		z := -half + float32(i)*every
		DrawSegment(Vector3{-half, 0, z}, Vector3{half, 0, z}, viewProjection, viewport, color, dst)
	}
}

// DrawSphere draws a latitude/longitude wireframe. Every cell emits the segment
// along its latitude and the one along its longitude.
func DrawSphere(sphere Sphere, viewProjection, viewport Matrix4x4, color uint32, dst LineDrawer) {
	const lonEvery = 2 * math.Pi / SphereSubdivision
	const latEvery = math.Pi / SphereSubdivision

	point := func(lat, lon float64) Vector3 {
		return sphere.Center.Add(Vector3{
			X: float32(math.Cos(lat) * math.Cos(lon)),
			Y: float32(math.Sin(lat)),
			Z: float32(math.Cos(lat) * math.Sin(lon)),
		}.Mul(sphere.Radius))
	}

	for latIndex := 0; latIndex < SphereSubdivision; latIndex++ {
		lat := -math.Pi/2 + latEvery*float64(latIndex)
		for lonIndex := 0; lonIndex < SphereSubdivision; lonIndex++ {
			lon := lonEvery * float64(lonIndex)
			a := point(lat, lon)
			b := point(lat+latEvery, lon)
			c := point(lat, lon+lonEvery)
			DrawSegment(a, b, viewProjection, viewport, color, dst)
			DrawSegment(a, c, viewProjection, viewport, color, dst)
		}
	}
}
