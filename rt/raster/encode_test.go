package raster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCanvas() *Canvas {
	c := NewCanvas(16, 8)
	c.Clear(0x202020FF)
	c.DrawLine(0, 0, 15, 7, 0xFF0000FF)
	return c
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"webp", FormatWebP, false},
		{".tga", FormatTGA, false},
		{"bmp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, ".webp", FormatWebP.Ext())
}

func TestEncodeDecode(t *testing.T) {
	c := testCanvas()

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, c.Image(), FormatPNG))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, c.Image().Bounds(), img.Bounds())
		r, _, _, _ := img.At(0, 0).RGBA()
		assert.Equal(t, uint32(0xFFFF), r)
	})

	t.Run("webp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, c.Image(), FormatWebP))
		assert.Equal(t, []byte("RIFF"), buf.Bytes()[:4])
		img, err := nativewebp.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, c.Image().Bounds(), img.Bounds())
	})

	t.Run("tga", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, c.Image(), FormatTGA))
		img, err := tga.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, c.Image().Bounds().Size(), img.Bounds().Size())
	})

	t.Run("unsupported", func(t *testing.T) {
		err := Encode(&bytes.Buffer{}, c.Image(), Format("gif"))
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "shot.png")
	require.NoError(t, Save(path, testCanvas().Image()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = Save(filepath.Join(dir, "shot.jpg"), testCanvas().Image())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
