package image

import (
	"image/color"
	"log"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// Fractions of the font height between stacked lines and between quote
	// groups.
	lineSpacing   = 1.2
	spacerSpacing = 0.6

	shadowOffset = 3.0

	// Candidate font sizes step down by this much until the longest line
	// fits.
	sizeStep = 2.0
)

// TextRenderer lays quote text out on a drawing context, centered and
// shadowed. FontPaths are tried in order; when none loads the embedded Go
// Regular face is used, so rendering never fails on a missing font.
type TextRenderer struct {
	FontPaths   []string
	MinFontSize float64
	MaxFontSize float64
	TextColor   color.Color
	ShadowColor color.Color
	Logger      *log.Logger

	warnedFonts bool
}

var embeddedFont = func() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}()

func embeddedFace(size float64) font.Face {
	return truetype.NewFace(embeddedFont, &truetype.Options{Size: size})
}

func (tr *TextRenderer) setFace(dc *gg.Context, size float64) {
	warned := tr.warnedFonts
	tr.warnedFonts = true

	for _, path := range tr.FontPaths {
		err := dc.LoadFontFace(path, size)
		if err == nil {
			return
		}
		if !warned && tr.Logger != nil {
			tr.Logger.Printf("[WARN]: font %s unusable (%v), trying next\n", path, err)
		}
	}
	dc.SetFontFace(embeddedFace(size))
}

func (tr *TextRenderer) startSize(width, height float64) float64 {
	size := math.Min(width, height) / 20
	if tr.MaxFontSize > 0 {
		size = math.Min(size, tr.MaxFontSize)
	}
	return math.Max(size, tr.MinFontSize)
}

// Layout wraps each segment to maxWidth at the largest font size that keeps
// the longest resulting line within maxWidth, stepping down no further than
// MinFontSize. Segments are separated by an empty spacer line. The context
// is left with the chosen face set.
func (tr *TextRenderer) Layout(dc *gg.Context, segments []string, maxWidth float64) ([]string, float64) {
	size := tr.startSize(float64(dc.Width()), float64(dc.Height()))

	for {
		tr.setFace(dc, size)

		var lines []string
		for i, segment := range segments {
			lines = append(lines, dc.WordWrap(segment, maxWidth)...)
			if i < len(segments)-1 {
				lines = append(lines, "")
			}
		}

		if tr.maxLineWidth(dc, lines) <= maxWidth || size <= tr.MinFontSize {
			return lines, size
		}
		size = math.Max(size-sizeStep, tr.MinFontSize)
	}
}

func (tr *TextRenderer) maxLineWidth(dc *gg.Context, lines []string) float64 {
	var widest float64
	for _, line := range lines {
		if line == "" {
			continue
		}
		w, _ := dc.MeasureString(line)
		widest = math.Max(widest, w)
	}
	return widest
}

// DrawQuote renders the segments onto dc, horizontally centered, the block
// centered vertically, each line drawn in the shadow color offset down-right
// and then in the text color.
func (tr *TextRenderer) DrawQuote(dc *gg.Context, segments []string) {
	width := float64(dc.Width())
	height := float64(dc.Height())
	margin := width / 10

	lines, _ := tr.Layout(dc, segments, width-2*margin)
	lineHeight := dc.FontHeight()

	var total float64
	for _, line := range lines {
		if line == "" {
			total += lineHeight * spacerSpacing
		} else {
			total += lineHeight * lineSpacing
		}
	}

	y := (height - total) / 2
	for _, line := range lines {
		if line == "" {
			y += lineHeight * spacerSpacing
			continue
		}
		dc.SetColor(tr.ShadowColor)
		dc.DrawStringAnchored(line, width/2+shadowOffset, y+shadowOffset, 0.5, 1)
		dc.SetColor(tr.TextColor)
		dc.DrawStringAnchored(line, width/2, y, 0.5, 1)
		y += lineHeight * lineSpacing
	}
}
