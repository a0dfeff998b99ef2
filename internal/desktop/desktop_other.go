//go:build !darwin && !linux

package desktop

import (
	"fmt"
	"runtime"
)

type unsupportedSetter struct{}

func newSetter() Setter {
	return unsupportedSetter{}
}

func (unsupportedSetter) Set(string, int) error {
	return fmt.Errorf("setting the desktop picture is not supported on %s", runtime.GOOS)
}

func (unsupportedSetter) RefreshIconCache() error {
	return nil
}
