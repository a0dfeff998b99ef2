// Package desktop applies a wallpaper image through the operating system's
// desktop-picture facility.
package desktop

// Setter changes the desktop picture and refreshes any process that caches
// it. Set with index 0 targets every virtual desktop; a positive index
// targets that desktop only (1-based).
type Setter interface {
	Set(path string, index int) error
	RefreshIconCache() error
}

func NewSetter() Setter {
	return newSetter()
}
