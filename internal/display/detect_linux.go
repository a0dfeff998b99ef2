//go:build linux

package display

import (
	"fmt"
	"os/exec"
)

func detect() ([]Display, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("xrandr: %w", err)
	}
	return parseXrandr(string(out)), nil
}
