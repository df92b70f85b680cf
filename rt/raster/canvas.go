package raster

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a CPU framebuffer the wireframe and the panel are drawn into.
// It implements core.LineDrawer.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix returns the tightly packed RGBA bytes for upload.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// Resize reallocates the backing image when the size changed.
func (c *Canvas) Resize(width, height int) {
	if width == c.Width() && height == c.Height() {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// RGBA unpacks a 0xRRGGBBAA color.
func RGBA(packed uint32) color.RGBA {
	return color.RGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

func (c *Canvas) Clear(packed uint32) {
	col := RGBA(packed)
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// FillRect fills r (clipped to the canvas) blending by the color's alpha.
func (c *Canvas) FillRect(r image.Rectangle, packed uint32) {
	r = r.Intersect(c.img.Rect)
	col := RGBA(packed)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.blend(x, y, col)
		}
	}
}

// StrokeRect outlines r with one pixel lines.
func (c *Canvas) StrokeRect(r image.Rectangle, packed uint32) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X-1), float32(r.Max.Y-1)
	c.DrawLine(x0, y0, x1, y0, packed)
	c.DrawLine(x1, y0, x1, y1, packed)
	c.DrawLine(x1, y1, x0, y1, packed)
	c.DrawLine(x0, y1, x0, y0, packed)
}

// DrawLine rasterizes a one pixel segment. Segments with NaN or Inf endpoints
// are dropped; the rest are clipped to the canvas before stepping.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float32, packed uint32) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return
	}
	fx0, fy0, fx1, fy1, ok := clipSegment(
		float64(x0), float64(y0), float64(x1), float64(y1),
		0, 0, float64(w-1), float64(h-1),
	)
	if !ok {
		return
	}
	c.bresenham(
		int(math.Round(fx0)), int(math.Round(fy0)),
		int(math.Round(fx1)), int(math.Round(fy1)),
		RGBA(packed),
	)
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.blend(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) blend(x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(c.img.Rect)) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	if col.A == 0xFF {
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, 0xFF
		return
	}
	a := uint32(col.A)
	na := 255 - a
	p[0] = uint8((uint32(col.R)*a + uint32(p[0])*na) / 255)
	p[1] = uint8((uint32(col.G)*a + uint32(p[1])*na) / 255)
	p[2] = uint8((uint32(col.B)*a + uint32(p[2])*na) / 255)
	p[3] = uint8(a + uint32(p[3])*na/255)
}

// clipSegment is Liang-Barsky against the inclusive box.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
