package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	resolutionRe = regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)`)
	xrandrGeomRe = regexp.MustCompile(`(\d+)x(\d+)\+\d+\+\d+`)
)

// parseSystemProfiler extracts displays from `system_profiler
// SPDisplaysDataType` output. A display's name is the enclosing header line
// (ending in a colon) above its "Resolution:" attribute.
func parseSystemProfiler(out string) []Display {
	var displays []Display
	var name string

	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))

		if strings.HasPrefix(line, "Resolution:") {
			m := resolutionRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			w, _ := strconv.Atoi(m[1])
			h, _ := strconv.Atoi(m[2])
			if name == "" {
				name = fmt.Sprintf("Display %d", len(displays)+1)
			}
			displays = append(displays, Display{Name: name, Width: w, Height: h})
			name = ""
			continue
		}

		// Display name headers sit at a fixed indent under "Displays:".
		if strings.HasSuffix(line, ":") && line != "Displays:" && indent >= 8 && indent <= 12 {
			name = strings.TrimSuffix(line, ":")
		}
	}

	return displays
}

// parseXrandr extracts connected outputs with an active mode from `xrandr`
// output.
func parseXrandr(out string) []Display {
	var displays []Display

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		m := xrandrGeomRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		displays = append(displays, Display{Name: strings.Fields(line)[0], Width: w, Height: h})
	}

	return displays
}
