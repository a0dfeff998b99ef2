package main

import (
	"log"

	"github.com/spf13/cobra"

	"quotewall/internal/config"
	"quotewall/internal/display"
	"quotewall/internal/services"
)

// preview renders a wallpaper to a file without touching the desktop, which
// is handy for checking colors and fonts before committing to a change.
func newPreviewCmd(cfg *config.Config, logger *log.Logger) *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:          "preview",
		Short:        "Render a wallpaper to a file without setting it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cfg, logger)
			if err != nil {
				return err
			}

			if width == 0 || height == 0 {
				d := display.Detect(logger)[0]
				width, height = d.Width, d.Height
			}

			composite, err := svc.RenderRandom(width, height)
			if err != nil {
				return err
			}
			if err := services.SaveJPEG(output, composite, cfg.JPEGQuality); err != nil {
				return err
			}

			logger.Printf("preview written to %s (%dx%d)", output, width, height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "preview.jpg", "output file")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "width in pixels (default: detected)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "height in pixels (default: detected)")
	return cmd
}
