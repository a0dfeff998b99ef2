package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// Gradient ramp of the synthesized background, dark blue fading slightly
// lighter toward the bottom.
var (
	GradientTop    = color.RGBA{R: 20, G: 30, B: 50, A: 255}
	GradientBottom = color.RGBA{R: 30, G: 50, B: 80, A: 255}
)

type Processor struct{}

// Gradient synthesizes a vertical gradient background at the target
// resolution.
func (p *Processor) Gradient(width, height int, top, bottom color.Color) image.Image {
	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, 0, float64(height))
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	return dc.Image()
}

// CoverResize scales src so it fully covers width x height, preserving
// aspect ratio, and center-crops the overflow.
func (p *Processor) CoverResize(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	var newW, newH int
	if srcW*height > srcH*width {
		// Source is wider than the target, fit to height.
		newH = height
		newW = srcW * height / srcH
	} else {
		newW = width
		newH = srcH * width / srcW
	}

	scaled := resize.Resize(uint(newW), uint(newH), src, resize.Lanczos3)

	offsetX := (width - newW) / 2
	offsetY := (height - newH) / 2

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), scaled, image.Pt(-offsetX, -offsetY), draw.Src)
	return out
}

// Darken composites a uniform translucent black layer over src so light
// backgrounds cannot wash out the text.
func (p *Processor) Darken(src image.Image, alpha uint8) image.Image {
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	draw.Draw(out, out.Bounds(), image.NewUniform(color.NRGBA{A: alpha}), image.Point{}, draw.Over)
	return out
}
