package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientDimensions(t *testing.T) {
	p := &Processor{}
	img := p.Gradient(800, 600, color.RGBA{20, 30, 50, 255}, color.RGBA{30, 50, 80, 255})

	b := img.Bounds()
	assert.Equal(t, 800, b.Dx())
	assert.Equal(t, 600, b.Dy())
}

func TestGradientRamp(t *testing.T) {
	p := &Processor{}
	img := p.Gradient(100, 100, color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255})

	topR, _, _, _ := img.At(50, 0).RGBA()
	bottomR, _, _, _ := img.At(50, 99).RGBA()
	assert.Less(t, topR, bottomR, "gradient should darken toward the top")
}

func TestCoverResizeWiderSource(t *testing.T) {
	p := &Processor{}
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))

	out := p.CoverResize(src, 200, 200)

	b := out.Bounds()
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 200, b.Dy())
}

func TestCoverResizeTallerSource(t *testing.T) {
	p := &Processor{}
	src := image.NewRGBA(image.Rect(0, 0, 100, 400))

	out := p.CoverResize(src, 300, 150)

	b := out.Bounds()
	assert.Equal(t, 300, b.Dx())
	assert.Equal(t, 150, b.Dy())
}

func TestCoverResizeFillsEntireTarget(t *testing.T) {
	p := &Processor{}
	src := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			src.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	out := p.CoverResize(src, 120, 60)

	for _, pt := range []image.Point{{0, 0}, {119, 0}, {0, 59}, {119, 59}, {60, 30}} {
		_, _, _, a := out.At(pt.X, pt.Y).RGBA()
		require.NotZero(t, a, "pixel %v left uncovered", pt)
	}
}

func TestDarken(t *testing.T) {
	p := &Processor{}
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{200, 200, 200, 255})
		}
	}

	out := p.Darken(src, 100)

	r, g, b, _ := out.At(5, 5).RGBA()
	for _, c := range []uint32{r, g, b} {
		assert.Less(t, c, uint32(200<<8), "overlay should darken every channel")
	}
}
