package provider

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImageProviderSeaPixel(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	p := NewImageProvider(img, ImageOptions{Size: 10})
	c := p.GetData(0, 0, 0)
	assert.True(t, c.IsSea())
	assert.InDelta(t, -1.0, c.SeaFactor, 1e-6)
}

func TestImageProviderLandPixel(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 128, G: 64, B: 0, A: 255})
	p := NewImageProvider(img, ImageOptions{Size: 10})
	c := p.GetData(0, 0, 0)
	assert.False(t, c.IsSea())
	assert.InDelta(t, 64.0/255, c.UpliftFactor, 1e-6)
	assert.InDelta(t, 128.0/255, c.SlopeFactor, 1e-6)
}

func TestImageProviderDefaultsSizeToImageWidth(t *testing.T) {
	img := solidImage(20, 20, color.RGBA{A: 255})
	p := NewImageProvider(img, ImageOptions{})
	assert.Equal(t, 20, p.Size())
}
