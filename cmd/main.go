package main

import (
	"log"
	"os"

	"quotewall/internal/config"
)

func main() {
	logger := log.Default()
	cfg := config.Load(logger)

	root := newRootCmd(cfg, logger)
	root.AddCommand(
		newPreviewCmd(cfg, logger),
		newDisplaysCmd(logger),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
