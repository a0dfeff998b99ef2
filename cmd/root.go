package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"quotewall/internal/config"
	"quotewall/internal/desktop"
	"quotewall/internal/display"
	"quotewall/internal/files"
	"quotewall/internal/image"
	"quotewall/internal/services"
)

func newRootCmd(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "quotewall",
		Short:        "Render a random quote and set it as the desktop wallpaper",
		Long:         "quotewall picks a random quote from a text file, renders it over a gradient or a configured background image at your screen's resolution, and sets the result as the desktop wallpaper.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg, logger)
			if err != nil {
				return err
			}

			displays := display.Detect(logger)
			logger.Printf("detected %d display(s)", len(displays))
			for i, d := range displays {
				logger.Printf("  display %d: %s", i+1, d)
			}

			return svc.Run(displays)
		},
	}
}

func buildService(cfg *config.Config, logger *log.Logger) (*services.WallpaperService, error) {
	textColor, err := config.ParseHexColor(cfg.TextColor)
	if err != nil {
		return nil, err
	}
	shadowColor, err := config.ParseHexColor(cfg.ShadowColor)
	if err != nil {
		return nil, err
	}

	fontPaths := image.SystemFontCandidates()
	if cfg.FontFile != "" {
		fontPaths = append([]string{cfg.FontFile}, fontPaths...)
	}

	renderer := &image.TextRenderer{
		FontPaths:   fontPaths,
		MinFontSize: cfg.MinFontSize,
		MaxFontSize: cfg.MaxFontSize,
		TextColor:   textColor,
		ShadowColor: shadowColor,
		Logger:      logger,
	}

	manager, err := files.NewManager(cfg.OutputDir, cfg.KeepPerDisplay)
	if err != nil {
		return nil, err
	}

	return services.NewWallpaperService(
		cfg.QuotesFile,
		cfg.BackgroundImage,
		cfg.JPEGQuality,
		renderer,
		manager,
		desktop.NewSetter(),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		logger,
	), nil
}
