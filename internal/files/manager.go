// Package files manages the wallpaper output directory: naming, the
// current-wallpaper symlink, and pruning of old renders.
package files

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// CurrentLinkName is a stable alias for the most recent wallpaper, useful
// for pointing other tools at the output without knowing the timestamped
// name.
const CurrentLinkName = "current_wallpaper.jpg"

var displayGroupRe = regexp.MustCompile(`_display(\d+)_`)

type Manager struct {
	dir  string
	keep int
}

// NewManager creates the output directory if needed. keep is the number of
// renders retained per display when pruning.
func NewManager(dir string, keep int) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create wallpaper directory: %w", err)
	}
	return &Manager{dir: dir, keep: keep}, nil
}

func (m *Manager) Dir() string {
	return m.dir
}

// OutputPath names a render uniquely per run so the OS treats each one as a
// new picture instead of serving a cached copy.
func (m *Manager) OutputPath(displayIndex int, now time.Time) string {
	return filepath.Join(m.dir, fmt.Sprintf("wallpaper_display%d_%d.jpg", displayIndex, now.Unix()))
}

// UpdateCurrentLink repoints the stable symlink at target.
func (m *Manager) UpdateCurrentLink(target string) error {
	link := filepath.Join(m.dir, CurrentLinkName)
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("remove old link: %w", err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("link %s: %w", CurrentLinkName, err)
	}
	return nil
}

// Prune deletes all but the newest renders of each display group. Removal
// failures are ignored, the next run prunes again.
func (m *Manager) Prune() error {
	paths, err := filepath.Glob(filepath.Join(m.dir, "wallpaper*.jpg"))
	if err != nil {
		return err
	}

	groups := make(map[string][]string)
	for _, path := range paths {
		key := "all"
		if match := displayGroupRe.FindStringSubmatch(filepath.Base(path)); match != nil {
			key = match[1]
		}
		groups[key] = append(groups[key], path)
	}

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return modTime(group[i]).After(modTime(group[j]))
		})
		for _, old := range group[min(m.keep, len(group)):] {
			os.Remove(old)
		}
	}
	return nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// LoadImage decodes a JPEG or PNG file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
