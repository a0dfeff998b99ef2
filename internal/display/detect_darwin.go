//go:build darwin

package display

import (
	"fmt"
	"os/exec"
)

func detect() ([]Display, error) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return nil, fmt.Errorf("system_profiler: %w", err)
	}
	return parseSystemProfiler(string(out)), nil
}
