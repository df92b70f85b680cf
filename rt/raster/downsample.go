package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks src by an integer factor with CatmullRom filtering.
// Factors below 2 return src unchanged.
func Downsample(src *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
