package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face wraps a font face used for panel labels.
type Face struct {
	face font.Face
}

// NewFace parses the embedded Go Regular font at the given pixel size.
func NewFace(size float64) (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return &Face{face: face}, nil
}

// LineHeight is the face height in whole pixels.
func (f *Face) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

func (f *Face) Measure(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(f *Face, x, y int, s string, packed uint32) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(RGBA(packed)),
		Face: f.face,
		Dot:  fixed.P(x, y+f.Ascent()),
	}
	d.DrawString(s)
}
