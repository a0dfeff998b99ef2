package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"quotewall/internal/display"
)

func newDisplaysCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "displays",
		Short:        "List detected displays and their resolutions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, d := range display.Detect(logger) {
				fmt.Fprintf(cmd.OutOrStdout(), "Display %d: %s\n", i+1, d)
			}
			return nil
		},
	}
}
