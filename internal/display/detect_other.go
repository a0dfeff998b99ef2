//go:build !darwin && !linux

package display

import (
	"fmt"
	"runtime"
)

func detect() ([]Display, error) {
	return nil, fmt.Errorf("display detection not supported on %s", runtime.GOOS)
}
