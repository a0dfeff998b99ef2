package services

import (
	"fmt"
	img "image"
	"image/jpeg"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fogleman/gg"

	"quotewall/internal/desktop"
	"quotewall/internal/display"
	"quotewall/internal/files"
	"quotewall/internal/image"
	"quotewall/internal/quotes"
)

// Opacity of the contrast layer drawn over a configured background image.
const overlayAlpha = 100

type WallpaperService struct {
	quotesFile      string
	backgroundImage string
	jpegQuality     int

	processor *image.Processor
	renderer  *image.TextRenderer
	manager   *files.Manager
	setter    desktop.Setter

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
}

func NewWallpaperService(
	quotesFile string,
	backgroundImage string,
	jpegQuality int,
	renderer *image.TextRenderer,
	manager *files.Manager,
	setter desktop.Setter,
	rng *rand.Rand,
	logger *log.Logger,
) *WallpaperService {
	return &WallpaperService{
		quotesFile:      quotesFile,
		backgroundImage: backgroundImage,
		jpegQuality:     jpegQuality,
		processor:       &image.Processor{},
		renderer:        renderer,
		manager:         manager,
		setter:          setter,
		rng:             rng,
		now:             time.Now,
		logger:          logger,
	}
}

// Run renders and applies one wallpaper per display. Quote and render
// problems are fatal; a failing desktop-picture call is not, since the file
// is already on disk for manual application.
func (s *WallpaperService) Run(displays []display.Display) error {
	if len(displays) == 0 {
		return fmt.Errorf("no displays to render for")
	}

	groups, err := quotes.Load(s.quotesFile)
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}
	picks := quotes.NewPicker(groups, s.rng).PickN(len(displays))

	outputs := make([]string, 0, len(displays))
	for i, d := range displays {
		s.logger.Printf("rendering %s", d)

		composite, err := s.Render(picks[i], d.Width, d.Height)
		if err != nil {
			return fmt.Errorf("render display %d: %w", i+1, err)
		}

		out := s.manager.OutputPath(i+1, s.now())
		if err := SaveJPEG(out, composite, s.jpegQuality); err != nil {
			return fmt.Errorf("save wallpaper: %w", err)
		}
		outputs = append(outputs, out)
	}

	applied := 0
	for i, out := range outputs {
		index := i + 1
		if len(displays) == 1 {
			index = 0 // every desktop
		}
		if err := s.setter.Set(out, index); err != nil {
			s.logger.Printf("[WARN]: could not set wallpaper for display %d: %v\n", i+1, err)
			s.reportManual(out)
			continue
		}
		color.Green("✓ Wallpaper set for display %d", i+1)
		applied++
	}

	if applied > 0 {
		if err := s.setter.RefreshIconCache(); err != nil {
			s.logger.Printf("[WARN]: icon cache refresh failed: %v\n", err)
		}
	}

	if err := s.manager.UpdateCurrentLink(outputs[0]); err != nil {
		s.logger.Printf("[WARN]: %v\n", err)
	}
	if err := s.manager.Prune(); err != nil {
		s.logger.Printf("[WARN]: prune old wallpapers: %v\n", err)
	}
	return nil
}

// RenderRandom picks one quote group and renders it at the given size
// without touching the desktop.
func (s *WallpaperService) RenderRandom(width, height int) (img.Image, error) {
	groups, err := quotes.Load(s.quotesFile)
	if err != nil {
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	return s.Render(quotes.NewPicker(groups, s.rng).Pick(), width, height)
}

func (s *WallpaperService) Render(group quotes.Group, width, height int) (img.Image, error) {
	bg, err := s.background(width, height)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(bg)
	s.renderer.DrawQuote(dc, group)
	return dc.Image(), nil
}

func (s *WallpaperService) background(width, height int) (img.Image, error) {
	if s.backgroundImage == "" {
		return s.processor.Gradient(width, height, image.GradientTop, image.GradientBottom), nil
	}

	// A configured but unreadable background is a configuration mistake,
	// not something to paper over with the gradient.
	src, err := files.LoadImage(s.backgroundImage)
	if err != nil {
		return nil, fmt.Errorf("background image %s: %w", s.backgroundImage, err)
	}
	return s.processor.Darken(s.processor.CoverResize(src, width, height), overlayAlpha), nil
}

func (s *WallpaperService) reportManual(path string) {
	color.Yellow("⚠ Could not set the wallpaper automatically.")
	fmt.Printf("The image was saved to:\n  %s\n", path)
	fmt.Printf("Set it manually: open %s in Finder, right-click the file and choose 'Set Desktop Picture'.\n", filepath.Dir(path))
}

func SaveJPEG(path string, composite img.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, composite, &jpeg.Options{Quality: quality})
}
