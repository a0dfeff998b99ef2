//go:build darwin

package desktop

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"
)

const scriptTimeout = 5 * time.Second

type darwinSetter struct{}

func newSetter() Setter {
	return darwinSetter{}
}

// Set tells System Events to change the desktop picture. Several script
// variants are tried because the straightforward form fails on some macOS
// versions depending on automation permissions.
func (darwinSetter) Set(path string, index int) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var scripts []string
	if index > 0 {
		scripts = []string{
			fmt.Sprintf(`tell application "System Events" to tell desktop %d to set picture to POSIX file %q`, index, abs),
			fmt.Sprintf("set theFile to POSIX file %q as alias\ntell application \"System Events\" to tell desktop %d to set picture to theFile", abs, index),
		}
	} else {
		scripts = []string{
			fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to POSIX file %q`, abs),
			fmt.Sprintf("tell application \"System Events\"\n\tset desktopCount to count of desktops\n\trepeat with i from 1 to desktopCount\n\t\ttell desktop i to set picture to POSIX file %q\n\tend repeat\nend tell", abs),
			fmt.Sprintf("set theFile to POSIX file %q as alias\ntell application \"System Events\" to tell every desktop to set picture to theFile", abs),
		}
	}

	var lastErr error
	for _, script := range scripts {
		if lastErr = runOsascript(script); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("set desktop picture: %w", lastErr)
}

func runOsascript(script string) error {
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %v: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// RefreshIconCache restarts the Dock so the new picture shows immediately.
func (darwinSetter) RefreshIconCache() error {
	return exec.Command("killall", "Dock").Run()
}
