package image

import "runtime"

// SystemFontCandidates returns well-known font file locations for the
// current OS, tried after any user-configured font. Collection formats
// (.ttc) are omitted since the loader only handles plain TrueType files.
func SystemFontCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Tahoma.ttf",
		}
	case "linux":
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		}
	default:
		return nil
	}
}
