// Package display reports the pixel dimensions of connected screens.
package display

import (
	"fmt"
	"log"
)

// Defaults used when detection is unavailable or fails.
const (
	DefaultWidth  = 2560
	DefaultHeight = 1440
)

type Display struct {
	Name   string
	Width  int
	Height int
}

func (d Display) String() string {
	return fmt.Sprintf("%s (%dx%d)", d.Name, d.Width, d.Height)
}

// Detect returns all connected displays. It never returns an empty slice:
// when detection fails a single default display is reported and the failure
// is logged.
func Detect(logger *log.Logger) []Display {
	displays, err := detect()
	if err != nil {
		logger.Printf("[WARN]: display detection failed (%v). Using default %dx%d\n", err, DefaultWidth, DefaultHeight)
	}
	if len(displays) == 0 {
		return []Display{{Name: "Default Display", Width: DefaultWidth, Height: DefaultHeight}}
	}
	return displays
}
